// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/pflag"
)

// Whoami prints the caller identity resolved during credential bootstrap.
type Whoami struct {
	cmdCtx *Context
}

// WhoamiFlags returns the whoami command's option spec.
func WhoamiFlags() *pflag.FlagSet {
	return pflag.NewFlagSet("whoami", pflag.ContinueOnError)
}

// NewWhoami constructs the whoami unit.
func NewWhoami(flags *pflag.FlagSet, cmdCtx *Context) (Unit, error) {
	return &Whoami{cmdCtx: cmdCtx}, nil
}

func (w *Whoami) Execute(ctx context.Context) error {
	creds := w.cmdCtx.Creds

	if w.cmdCtx.JSON() {
		data, err := json.MarshalIndent(map[string]string{
			"account": creds.Account,
			"arn":     creds.ARN,
			"userId":  creds.UserID,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w.cmdCtx.Stdout, string(data))
		return nil
	}

	fmt.Fprintf(w.cmdCtx.Stdout, "Account: %s\nARN:     %s\nUserId:  %s\n",
		creds.Account, creds.ARN, creds.UserID)
	return nil
}
