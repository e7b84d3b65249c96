// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/torarvid/nova/internal/params"
	"github.com/torarvid/nova/internal/paramstore"
	"github.com/torarvid/nova/internal/validation"
)

// destroySettings reuses the deploy section of the merged tree: destroy
// removes exactly what deploy would have written, replica region included.
type destroySettings struct {
	Prefix  string `mapstructure:"prefix"`
	Region  string `mapstructure:"region"`
	Replica string `mapstructure:"replica"`
}

// Destroy deletes the parameters a deploy of the same configuration tree
// would have written under the prefix.
type Destroy struct {
	settings destroySettings
	dryRun   bool
	cmdCtx   *Context
}

// DestroyFlags returns the destroy command's option spec.
func DestroyFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("destroy", pflag.ContinueOnError)
	flags.String("prefix", "", "Parameter path prefix to delete under (required)")
	flags.String("region", "", "AWS region (default: from credentials)")
	flags.String("replica", "", "Region replicated parameters were written to")
	flags.Bool("dry-run", false, "Show what would be deleted without deleting")
	return flags
}

// NewDestroy constructs the destroy unit from its parsed options and the
// bootstrap context.
func NewDestroy(flags *pflag.FlagSet, cmdCtx *Context) (Unit, error) {
	d := &Destroy{cmdCtx: cmdCtx}
	if err := decodeSettings(cmdCtx.Params, &d.settings); err != nil {
		return nil, err
	}
	if flags.Changed("prefix") {
		d.settings.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("region") {
		d.settings.Region, _ = flags.GetString("region")
	}
	if flags.Changed("replica") {
		d.settings.Replica, _ = flags.GetString("replica")
	}
	d.dryRun, _ = flags.GetBool("dry-run")

	if err := validation.ValidatePrefix(d.settings.Prefix); err != nil {
		return nil, err
	}
	if err := validation.ValidateRegion(d.settings.Region); err != nil {
		return nil, err
	}
	if err := validation.ValidateRegion(d.settings.Replica); err != nil {
		return nil, err
	}
	if err := validation.ValidateRegions(d.settings.Region, d.settings.Replica); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Destroy) Execute(ctx context.Context) error {
	leaves := publishableLeaves(d.cmdCtx.Params)
	if len(leaves) == 0 {
		return errors.New("nothing to destroy, the merged configuration has no values")
	}

	regions := []string{d.settings.Region}
	if d.settings.Replica != "" {
		regions = append(regions, d.settings.Replica)
	}

	if d.dryRun {
		for _, region := range regions {
			for _, leaf := range leaves {
				fmt.Fprintf(d.cmdCtx.Stdout, "would delete %s/%s%s\n",
					d.settings.Prefix, leaf.Path, regionLabel(region))
			}
		}
		fmt.Fprintf(d.cmdCtx.Stdout, "Dry run: %d parameters would be deleted under %s\n",
			len(leaves)*len(regions), d.settings.Prefix)
		return nil
	}

	deleted, err := d.remove(ctx, d.settings.Region, leaves)
	if err != nil {
		return err
	}
	if d.settings.Replica != "" {
		replicaDeleted, err := d.remove(ctx, d.settings.Replica, leaves)
		if err != nil {
			return fmt.Errorf("replica region %s: %w", d.settings.Replica, err)
		}
		deleted += replicaDeleted
	}

	fmt.Fprintf(d.cmdCtx.Stdout, "Deleted %d parameters under %s\n", deleted, d.settings.Prefix)
	return nil
}

// remove deletes the leaves in one region and reports how many were
// actually removed. Absent parameters are skipped: destroy is idempotent.
func (d *Destroy) remove(ctx context.Context, region string, leaves []params.Leaf) (int, error) {
	client, err := paramstore.NewClient(d.cmdCtx.Creds, region)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, leaf := range leaves {
		name := d.settings.Prefix + "/" + leaf.Path
		err := client.Delete(ctx, name)
		switch {
		case errors.Is(err, paramstore.ErrNotFound):
			slog.Warn("parameter already absent", "name", name)
		case err != nil:
			return deleted, err
		default:
			slog.Info("parameter deleted", "name", name)
			deleted++
		}
	}
	return deleted, nil
}
