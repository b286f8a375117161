package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

func newAPIKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apikey",
		Aliases: []string{"key"},
		Short:   "Issue and inspect API keys",
	}

	cmd.AddCommand(newAPIKeyIssueCmd())
	cmd.AddCommand(newAPIKeyCheckCmd())

	return cmd
}

// ---------- apikey issue ----------

func newAPIKeyIssueCmd() *cobra.Command {
	var (
		email string
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Generate a new API key for a user",
		Long:  "Generate and store a new API key for the user with that email. The previous key stops working. The key is shown once.",
		Example: `  hercules apikey issue --email juan.perez@pjecz.gob.mx
  hercules apikey issue --email juan.perez@pjecz.gob.mx --ttl 720h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), cmd.Root().Version)
			if err != nil {
				return err
			}
			defer a.close(context.Background())

			if ttl <= 0 {
				ttl = a.cfg.APIKeyTTL
			}
			return runAPIKeyIssue(cmd.Context(), cmd.OutOrStdout(), a.authService(), email, ttl)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the user (required)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Key lifetime (default API_KEY_TTL)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runAPIKeyIssue(ctx context.Context, out io.Writer, auth ports.AuthService, email string, ttl time.Duration) error {
	key, expiresAt, err := auth.Issue(ctx, email, ttl)
	if err != nil {
		return fmt.Errorf("issue api key: %w", err)
	}

	fmt.Fprintln(out, "API Key issued:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Email:   %s\n", email)
	fmt.Fprintf(out, "  Key:     %s\n", key)
	fmt.Fprintf(out, "  Expires: %s\n", expiresAt.Format(time.RFC3339))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Save this key now - it cannot be retrieved again.")
	return nil
}

// ---------- apikey check ----------

func newAPIKeyCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <key>",
		Short: "Verify an API key and print its permissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), cmd.Root().Version)
			if err != nil {
				return err
			}
			defer a.close(context.Background())

			return runAPIKeyCheck(cmd.Context(), cmd.OutOrStdout(), a.authService(), args[0])
		},
	}
}

func runAPIKeyCheck(ctx context.Context, out io.Writer, auth ports.AuthService, key string) error {
	principal, err := auth.Authenticate(ctx, key)
	if err != nil {
		if kind := domain.AuthFailureKind(err); kind != "" {
			fmt.Fprintf(out, "Rejected: %s (%v)\n", kind, err)
			return fmt.Errorf("api key rejected")
		}
		return err
	}

	perms, err := principal.Permissions(ctx)
	if err != nil {
		return fmt.Errorf("resolve permissions: %w", err)
	}

	fmt.Fprintf(out, "Accepted: %s <%s>\n", principal.FullName(), principal.Email)
	fmt.Fprintf(out, "Expires:  %s\n", principal.APIKeyExpiresAt.Format(time.RFC3339))
	if len(perms) == 0 {
		fmt.Fprintln(out, "No permissions granted.")
		return nil
	}

	modules := make([]string, 0, len(perms))
	for module := range perms {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	fmt.Fprintln(out)
	for _, module := range modules {
		level := perms[module]
		fmt.Fprintf(out, "  %-16s %d %s\n", module, int(level), level)
	}
	return nil
}
