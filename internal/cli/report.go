// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/smithy-go"

	"github.com/torarvid/nova/internal/awsauth"
)

// Reporter formats failures from any stage. Verbosity follows the debug
// flag: credential failures stay terse by default and show the full
// diagnostic only when debugging.
type Reporter struct {
	Debug  bool
	JSON   bool
	Stderr io.Writer
}

// Report writes one formatted error. Nothing escapes to an unhandled crash:
// every failure funnels through here at the nearest orchestration boundary.
func (r *Reporter) Report(err error) {
	var credErr *awsauth.CredentialError
	if errors.As(err, &credErr) {
		if r.Debug {
			r.emit(credErr.Error(), credErr.Unwrap())
			return
		}
		r.emit(credErr.Error(), nil)
		return
	}

	var consErr *ConstructionError
	if errors.As(err, &consErr) {
		r.emit(consErr.Error(), r.detail(consErr.Unwrap()))
		if !r.JSON {
			fmt.Fprint(r.Stderr, "\n"+consErr.Usage)
		}
		return
	}

	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		r.emit(execErr.Error(), r.detail(execErr.Unwrap()))
		if !r.JSON {
			fmt.Fprint(r.Stderr, "\n"+execErr.Usage)
		}
		return
	}

	r.emit(err.Error(), nil)
}

// detail surfaces the AWS API error code when debugging; otherwise the
// top-level message is enough.
func (r *Reporter) detail(err error) error {
	if !r.Debug {
		return nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err
}

func (r *Reporter) emit(message string, detail error) {
	if r.JSON {
		envelope := map[string]any{"error": map[string]any{"message": message}}
		if detail != nil {
			envelope["error"].(map[string]any)["detail"] = detail.Error()
		}
		data, _ := json.MarshalIndent(envelope, "", "  ")
		fmt.Fprintln(r.Stderr, string(data))
		return
	}

	fmt.Fprintf(r.Stderr, "Error: %s\n", message)
	if detail != nil {
		fmt.Fprintf(r.Stderr, "  caused by: %v\n", detail)
	}
}
