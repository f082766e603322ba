package app

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/samvad-hq/line-login/internal/config"
	"github.com/samvad-hq/line-login/internal/logger"
	"github.com/samvad-hq/line-login/pkg/linelogin"
)

type rootOptions struct {
	debug        bool
	output       string
	clientID     string
	clientSecret string
}

// NewRootCmd creates the lineloginctl command tree. Flags override the
// credentials and output format from cfg.
func NewRootCmd(cfg *config.Config, log logger.Logger, opts ...linelogin.Option) *cobra.Command {
	ro := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:               "lineloginctl",
		Short:             "Call LINE Login API endpoints",
		Long:              `lineloginctl issues, verifies, refreshes and revokes LINE Login tokens and reads user information for a channel.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if ls, ok := log.(logger.LevelSetter); ok && ro.debug {
				ls.SetLevel(zapcore.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&ro.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&ro.output, "output", "o", "", "Output format (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&ro.clientID, "client-id", "", "Channel ID (defaults to LINE_CLIENT_ID)")
	rootCmd.PersistentFlags().StringVar(&ro.clientSecret, "client-secret", "", "Channel secret (defaults to LINE_CLIENT_SECRET)")

	// run builds the App lazily so flag overrides are applied.
	run := func(cmd *cobra.Command, name string, op func(context.Context, *linelogin.Client) (any, error)) error {
		effective := *cfg
		if ro.clientID != "" {
			effective.ClientID = ro.clientID
		}
		if ro.clientSecret != "" {
			effective.ClientSecret = ro.clientSecret
		}
		a, err := New(&effective, log, opts...)
		if err != nil {
			return err
		}
		return a.Run(cmd.Context(), cmd.OutOrStdout(), ro.output, name, op)
	}

	rootCmd.AddCommand(
		newTokenCmd(run),
		newIDTokenCmd(run),
		newBearerCmd(run, "userinfo", "Show OpenID user info for an access token",
			func(ctx context.Context, c *linelogin.Client, token string) (any, error) {
				return c.UserInfo(ctx, token)
			}),
		newBearerCmd(run, "profile", "Show the LINE profile for an access token",
			func(ctx context.Context, c *linelogin.Client, token string) (any, error) {
				return c.Profile(ctx, token)
			}),
		newBearerCmd(run, "friendship", "Show friendship status with the linked official account",
			func(ctx context.Context, c *linelogin.Client, token string) (any, error) {
				return c.FriendshipStatus(ctx, token)
			}),
	)

	return rootCmd
}

type runFunc func(cmd *cobra.Command, name string, op func(context.Context, *linelogin.Client) (any, error)) error

func newTokenCmd(run runFunc) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue, verify, refresh and revoke access tokens",
	}

	var code, redirectURI, codeVerifier string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Exchange an authorization code for tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, "token create", func(ctx context.Context, c *linelogin.Client) (any, error) {
				if codeVerifier != "" {
					return c.CreateTokenWithVerifier(ctx, code, redirectURI, codeVerifier)
				}
				return c.CreateToken(ctx, code, redirectURI)
			})
		},
	}
	createCmd.Flags().StringVar(&code, "code", "", "Authorization code")
	createCmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "Redirect URI used in the authorization request")
	createCmd.Flags().StringVar(&codeVerifier, "code-verifier", "", "PKCE code verifier, if a challenge was sent")
	_ = createCmd.MarkFlagRequired("code")
	_ = createCmd.MarkFlagRequired("redirect-uri")

	tokenCmd.AddCommand(
		createCmd,
		newArgCmd(run, "verify <access-token>", "token verify", "Verify an access token",
			func(ctx context.Context, c *linelogin.Client, token string) (any, error) {
				return c.VerifyAccessToken(ctx, token)
			}),
		newArgCmd(run, "refresh <refresh-token>", "token refresh", "Obtain a new access token with a refresh token",
			func(ctx context.Context, c *linelogin.Client, token string) (any, error) {
				return c.RefreshAccessToken(ctx, token)
			}),
		newArgCmd(run, "revoke <access-token>", "token revoke", "Revoke an access token",
			func(ctx context.Context, c *linelogin.Client, token string) (any, error) {
				return c.RevokeAccessToken(ctx, token)
			}),
	)
	return tokenCmd
}

func newIDTokenCmd(run runFunc) *cobra.Command {
	idTokenCmd := &cobra.Command{
		Use:   "idtoken",
		Short: "Work with ID tokens",
	}

	var nonce, userID string
	verifyCmd := &cobra.Command{
		Use:   "verify <id-token>",
		Short: "Verify an ID token and show its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, u := linelogin.None[string](), linelogin.None[string]()
			if cmd.Flags().Changed("nonce") {
				n = linelogin.Some(nonce)
			}
			if cmd.Flags().Changed("user-id") {
				u = linelogin.Some(userID)
			}
			return run(cmd, "idtoken verify", func(ctx context.Context, c *linelogin.Client) (any, error) {
				return c.VerifyIDToken(ctx, args[0], n, u)
			})
		},
	}
	verifyCmd.Flags().StringVar(&nonce, "nonce", "", "Expected nonce")
	verifyCmd.Flags().StringVar(&userID, "user-id", "", "Expected user ID")

	idTokenCmd.AddCommand(verifyCmd)
	return idTokenCmd
}

// newBearerCmd builds a command taking a single access token argument.
func newBearerCmd(run runFunc, name, short string, op func(context.Context, *linelogin.Client, string) (any, error)) *cobra.Command {
	return newArgCmd(run, name+" <access-token>", name, short, op)
}

func newArgCmd(run runFunc, use, name, short string, op func(context.Context, *linelogin.Client, string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, name, func(ctx context.Context, c *linelogin.Client) (any, error) {
				return op(ctx, c, args[0])
			})
		},
	}
}
