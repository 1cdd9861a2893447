package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "calproxy/internal/errors"

	"github.com/spf13/cobra"
)

func newPingCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the configured Calendly credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, svc, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			u, err := svc.CurrentUser(ctx)
			if err != nil {
				var he *apperrors.HTTPError
				if errors.As(err, &he) && he.Details != "" {
					return fmt.Errorf("%s: %s", he.Message, he.Details)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "calendly: ok (%s <%s>)\n", u.Name, u.Email)
			if !svc.OwnerMatches(u) {
				fmt.Fprintf(out, "warning: token belongs to %s, not the configured owner\n", u.URI)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for Calendly")
	return cmd
}
