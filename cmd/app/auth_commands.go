package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/catalog/cmd/app/commands"
	"github.com/allisson/catalog/internal/app"
	"github.com/allisson/catalog/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a user with an explicit role",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Email address used to log in",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "USER",
					Usage:   "Role to grant: 'ADMIN' or 'USER'",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password; '-' reads it from stdin, omit to generate one",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					cmd.String("email"),
					cmd.String("role"),
					cmd.String("password"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "seed-users",
			Usage: "Create the demo admin and user accounts if they do not exist",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "admin-password",
					Value: commands.DefaultAdminPassword,
					Usage: "Password for admin@demo.com",
				},
				&cli.StringFlag{
					Name:  "user-password",
					Value: commands.DefaultUserPassword,
					Usage: "Password for user@demo.com",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunSeedUsers(
					ctx,
					userUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("admin-password"),
					cmd.String("user-password"),
				)
			},
		},
	}
}
