// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"

	"github.com/torarvid/nova/internal/params"
	"github.com/torarvid/nova/internal/paramstore"
	"github.com/torarvid/nova/internal/validation"
)

// SettingsKey is the reserved top-level key in the merged configuration
// tree that holds deploy/destroy settings. Values under it configure nova
// itself and are never published as parameters.
const SettingsKey = "deploy"

// deploySettings are the deploy options that may come either from command
// flags or from the SettingsKey section of the merged tree. Flags win.
type deploySettings struct {
	Prefix    string `mapstructure:"prefix"`
	Region    string `mapstructure:"region"`
	Replica   string `mapstructure:"replica"`
	Secure    bool   `mapstructure:"secure"`
	KMS       string `mapstructure:"kms"`
	Overwrite bool   `mapstructure:"overwrite"`
}

// Deploy publishes every scalar of the merged configuration tree as an SSM
// parameter under a path prefix.
type Deploy struct {
	settings deploySettings
	dryRun   bool
	cmdCtx   *Context
}

// DeployFlags returns the deploy command's option spec.
func DeployFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("deploy", pflag.ContinueOnError)
	flags.String("prefix", "", "Parameter path prefix to publish under (required)")
	flags.String("region", "", "AWS region (default: from credentials)")
	flags.String("replica", "", "Region to replicate parameters to")
	flags.Bool("secure", false, "Store values as SecureString")
	flags.String("kms", "", "KMS key for SecureString values")
	flags.Bool("overwrite", false, "Overwrite existing parameters")
	flags.Bool("dry-run", false, "Show what would be written without writing")
	return flags
}

// NewDeploy constructs the deploy unit from its parsed options and the
// bootstrap context. Settings from the merged tree's deploy section apply
// first; flags the user actually set override them.
func NewDeploy(flags *pflag.FlagSet, cmdCtx *Context) (Unit, error) {
	d := &Deploy{cmdCtx: cmdCtx}
	if err := decodeSettings(cmdCtx.Params, &d.settings); err != nil {
		return nil, err
	}
	applyDeployFlags(flags, &d.settings)
	d.dryRun, _ = flags.GetBool("dry-run")

	if err := validateDeploySettings(&d.settings); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeSettings(tree map[string]any, out any) error {
	section, ok := tree[SettingsKey]
	if !ok {
		return nil
	}
	if err := mapstructure.Decode(section, out); err != nil {
		return fmt.Errorf("invalid %q section in parameters: %w", SettingsKey, err)
	}
	return nil
}

func applyDeployFlags(flags *pflag.FlagSet, s *deploySettings) {
	if flags.Changed("prefix") {
		s.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("region") {
		s.Region, _ = flags.GetString("region")
	}
	if flags.Changed("replica") {
		s.Replica, _ = flags.GetString("replica")
	}
	if flags.Changed("secure") {
		s.Secure, _ = flags.GetBool("secure")
	}
	if flags.Changed("kms") {
		s.KMS, _ = flags.GetString("kms")
	}
	if flags.Changed("overwrite") {
		s.Overwrite, _ = flags.GetBool("overwrite")
	}
}

func validateDeploySettings(s *deploySettings) error {
	if err := validation.ValidatePrefix(s.Prefix); err != nil {
		return err
	}
	if err := validation.ValidateRegion(s.Region); err != nil {
		return err
	}
	if err := validation.ValidateRegion(s.Replica); err != nil {
		return err
	}
	if err := validation.ValidateRegions(s.Region, s.Replica); err != nil {
		return err
	}
	if err := validation.ValidateKMSKey(s.KMS); err != nil {
		return err
	}
	return validation.ValidateSecureRequirements(s.Secure, s.KMS)
}

// Execute flattens the merged tree and writes one parameter per leaf.
func (d *Deploy) Execute(ctx context.Context) error {
	leaves := publishableLeaves(d.cmdCtx.Params)
	if len(leaves) == 0 {
		return errors.New("nothing to deploy, the merged configuration has no values")
	}

	written, err := d.publish(ctx, d.settings.Region, d.settings.KMS, leaves)
	if err != nil {
		return err
	}
	attempts := len(leaves)

	if d.settings.Replica != "" {
		replicaKMS := replicaKMSKey(d.settings.KMS, d.settings.Replica)
		replicaWritten, err := d.publish(ctx, d.settings.Replica, replicaKMS, leaves)
		if err != nil {
			return fmt.Errorf("replica region %s: %w", d.settings.Replica, err)
		}
		written += replicaWritten
		attempts += len(leaves)
	}

	if d.dryRun {
		fmt.Fprintf(d.cmdCtx.Stdout, "Dry run: %d parameters would be written under %s\n",
			attempts, d.settings.Prefix)
		return nil
	}
	fmt.Fprintf(d.cmdCtx.Stdout, "Wrote %d parameters under %s (%d unchanged)\n",
		written, d.settings.Prefix, attempts-written)
	return nil
}

// publish writes the leaves to one region and reports how many were
// actually written (unchanged values are skipped on overwrite deploys).
func (d *Deploy) publish(ctx context.Context, region, kmsKey string, leaves []params.Leaf) (int, error) {
	if d.dryRun {
		for _, leaf := range leaves {
			fmt.Fprintf(d.cmdCtx.Stdout, "would write %s/%s%s\n",
				d.settings.Prefix, leaf.Path, regionLabel(region))
		}
		return 0, nil
	}

	client, err := paramstore.NewClient(d.cmdCtx.Creds, region)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, leaf := range leaves {
		name := d.settings.Prefix + "/" + leaf.Path

		if d.settings.Overwrite {
			current, err := client.Get(ctx, name)
			if err == nil && current == leaf.Value {
				slog.Debug("parameter unchanged", "name", name)
				continue
			}
			if err != nil && !errors.Is(err, paramstore.ErrNotFound) {
				return written, err
			}
		}

		if err := client.Put(ctx, name, leaf.Value, "managed by nova",
			d.settings.Secure, kmsKey, d.settings.Overwrite); err != nil {
			return written, err
		}
		slog.Info("parameter written", "name", name)
		written++
	}
	return written, nil
}

// publishableLeaves flattens the tree without the nova settings section.
func publishableLeaves(tree map[string]any) []params.Leaf {
	public := make(map[string]any, len(tree))
	for key, value := range tree {
		if key == SettingsKey {
			continue
		}
		public[key] = value
	}
	return params.Flatten(public)
}

// regionLabel names a region in dry-run output. Empty means the default
// region from the credential context.
func regionLabel(region string) string {
	if region == "" {
		return ""
	}
	return " in " + region
}

// replicaKMSKey rewrites a KMS key ARN for the replica region. Plain key
// IDs and aliases are usable as-is in any region.
func replicaKMSKey(key, replicaRegion string) string {
	if !strings.HasPrefix(key, "arn:aws:kms:") {
		return key
	}
	parts := strings.Split(key, ":")
	if len(parts) < 6 {
		return key
	}
	parts[3] = replicaRegion
	return strings.Join(parts, ":")
}
