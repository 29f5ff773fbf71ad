package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/mwieser/vidterm/internal/api"
	"github.com/mwieser/vidterm/internal/app"
	"github.com/mwieser/vidterm/internal/config"
	"github.com/mwieser/vidterm/internal/session"
)

func main() {
	logger := log.New(os.Stderr)

	root := &cli.Command{
		Name:    "vidterm",
		Usage:   "Browse VidStream channels from the terminal",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:  "session",
				Usage: "Path to session file",
			},
			&cli.StringFlag{
				Name:  "channel",
				Usage: "Channel handle to open on start",
			},
			&cli.IntFlag{
				Name:  "poll",
				Usage: "Feed poll interval in seconds",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return app.Run(ctx, app.Options{
				ConfigPath:  c.String("config"),
				SessionPath: c.String("session"),
				Channel:     c.String("channel"),
				PollEvery:   int(c.Int("poll")),
			})
		},
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			adminCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("vidterm: %v", err)
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in and save a session",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:  "session",
				Usage: "Path to session file",
			},
			&cli.StringFlag{
				Name:     "email",
				Aliases:  []string{"e"},
				Usage:    "Account email",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Account password (prompted when omitted)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			password := c.String("password")
			if password == "" {
				password, err = promptLine("Password: ")
				if err != nil {
					return err
				}
			}
			client, err := api.NewClient(cfg.ServerURL, "")
			if err != nil {
				return err
			}
			result, err := client.Login(ctx, c.String("email"), password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			sess := session.Session{
				AccessToken: result.AccessToken,
				UserID:      result.User.ID,
				Handle:      result.User.Handle,
				DisplayName: result.User.FullName,
			}
			if err := session.Save(c.String("session"), sess); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Printf("Logged in as @%s\n", sess.Handle)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Discard the saved session",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "session",
				Usage: "Path to session file",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := session.Clear(c.String("session")); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func adminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Administrative operations (requires an admin account)",
		Commands: []*cli.Command{
			{
				Name:  "users",
				Usage: "List registered accounts",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
					},
					&cli.StringFlag{
						Name:  "session",
						Usage: "Path to session file",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					client, err := adminClient(c)
					if err != nil {
						return err
					}
					accounts, err := client.ListAccounts(ctx)
					if err != nil {
						return fmt.Errorf("list accounts: %w", err)
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tHANDLE\tEMAIL\tBLOCKED")
					for _, a := range accounts {
						fmt.Fprintf(w, "%s\t@%s\t%s\t%v\n", a.ID, a.Handle, a.Email, a.IsBlocked)
					}
					return w.Flush()
				},
			},
			{
				Name:      "block",
				Usage:     "Toggle the blocked flag on an account",
				ArgsUsage: "<account-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
					},
					&cli.StringFlag{
						Name:  "session",
						Usage: "Path to session file",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					id := strings.TrimSpace(c.Args().First())
					if id == "" {
						return fmt.Errorf("account id is required")
					}
					client, err := adminClient(c)
					if err != nil {
						return err
					}
					account, err := client.SetAccountBlocked(ctx, id)
					if err != nil {
						return fmt.Errorf("block account: %w", err)
					}
					state := "unblocked"
					if account.IsBlocked {
						state = "blocked"
					}
					fmt.Printf("@%s is now %s\n", account.Handle, state)
					return nil
				},
			},
		},
	}
}

func adminClient(c *cli.Command) (*api.Client, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	sess := session.Load(c.String("session"))
	if !sess.Authenticated() {
		return nil, fmt.Errorf("not logged in; run `vidterm login` first")
	}
	return api.NewClient(cfg.ServerURL, sess.AccessToken)
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
