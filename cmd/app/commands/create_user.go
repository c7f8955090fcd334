package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	authUseCase "github.com/allisson/catalog/internal/auth/usecase"
)

// RunCreateUser creates a user with an explicit role. When password is empty a
// random one is generated and printed once, in either text or JSON format. A
// password of "-" is read from the first line of streams.Reader.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase authUseCase.UserUseCase,
	logger *slog.Logger,
	email string,
	role string,
	password string,
	format string,
	streams IOTuple,
) error {
	logger.Info("creating new user", slog.String("email", email), slog.String("role", role))

	if password == stdinPassword {
		var err error
		if password, err = readLine(streams.Reader); err != nil {
			return fmt.Errorf("failed to read password from stdin: %w", err)
		}
	}

	input := &authDomain.CreateUserInput{
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     authDomain.Role(strings.ToUpper(strings.TrimSpace(role))),
	}

	output, err := userUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		outputUserJSON(output, streams.Writer)
	} else {
		outputUserText(output, streams.Writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", output.ID.String()),
		slog.String("email", output.Email),
		slog.String("role", output.Role.String()),
	)

	return nil
}

// outputUserText outputs the result in human-readable text format.
func outputUserText(output *authDomain.CreateUserOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", output.ID.String())
	_, _ = fmt.Fprintf(writer, "Email: %s\n", output.Email)
	_, _ = fmt.Fprintf(writer, "Role: %s\n", output.Role)
	if output.PlainPassword != "" {
		_, _ = fmt.Fprintf(writer, "Password: %s\n", output.PlainPassword)
		_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The password is shown only once. Store it securely.")
	}
}

// outputUserJSON outputs the result in JSON format for machine consumption.
func outputUserJSON(output *authDomain.CreateUserOutput, writer io.Writer) {
	result := map[string]string{
		"user_id": output.ID.String(),
		"email":   output.Email,
		"role":    output.Role.String(),
	}
	if output.PlainPassword != "" {
		result["password"] = output.PlainPassword
	}

	writeJSON(writer, result)
}
