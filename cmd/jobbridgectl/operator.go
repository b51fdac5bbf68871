package main

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"jobbridge/internal/infrastructure/persistence/postgres"
	ucauth "jobbridge/internal/usecase/auth"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const minPasswordLength = 8

var operatorCmd = &cobra.Command{
	Use:   "operator",
	Short: "Manage NGO operator accounts",
}

var operatorCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an operator account, prompting for anything not given as a flag",
	RunE: func(_ *cobra.Command, _ []string) error {
		in, err := operatorInput()
		if err != nil {
			return err
		}

		return withSession(func(ctx context.Context, s *session) error {
			users, err := postgres.NewUserRepository(ctx, s.db.SQLDB())
			if err != nil {
				return err
			}
			defer func() { _ = users.Close() }()

			usr, err := ucauth.NewService(users).Register(ctx, in)
			if err != nil {
				if errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
					return fmt.Errorf("operator %s already exists", in.Email)
				}
				return err
			}
			s.logger.Info("operator created", zap.String("id", usr.ID.String()), zap.String("email", usr.Email))
			return nil
		})
	},
}

func init() {
	operatorCreateCmd.Flags().String("email", "", "operator email")
	operatorCreateCmd.Flags().String("full-name", "", "operator full name")
	_ = viper.BindPFlag("operator.email", operatorCreateCmd.Flags().Lookup("email"))
	_ = viper.BindPFlag("operator.full-name", operatorCreateCmd.Flags().Lookup("full-name"))
	_ = viper.BindEnv("operator.password", "JOBBRIDGE_OPERATOR_PASSWORD")

	operatorCmd.AddCommand(operatorCreateCmd)
	rootCmd.AddCommand(operatorCmd)
}

func operatorInput() (ucauth.RegisterInput, error) {
	in := ucauth.RegisterInput{
		Email:    strings.TrimSpace(viper.GetString("operator.email")),
		FullName: strings.TrimSpace(viper.GetString("operator.full-name")),
		Password: viper.GetString("operator.password"),
	}

	var err error
	if in.Email == "" {
		if in.Email, err = ask(promptui.Prompt{Label: "Email", Validate: validateEmail}); err != nil {
			return in, err
		}
	} else if err := validateEmail(in.Email); err != nil {
		return in, err
	}
	if in.FullName == "" {
		if in.FullName, err = ask(promptui.Prompt{Label: "Full name", Validate: validateNotBlank}); err != nil {
			return in, err
		}
	}
	if in.Password == "" {
		if in.Password, err = ask(promptui.Prompt{Label: "Password", Mask: '*', Validate: validatePassword}); err != nil {
			return in, err
		}
		if _, err := ask(promptui.Prompt{Label: "Repeat password", Mask: '*', Validate: func(s string) error {
			if s != in.Password {
				return errors.New("passwords do not match")
			}
			return nil
		}}); err != nil {
			return in, err
		}
	} else if err := validatePassword(in.Password); err != nil {
		return in, err
	}

	return in, nil
}

func ask(p promptui.Prompt) (string, error) {
	v, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", strings.ToLower(fmt.Sprint(p.Label)), err)
	}
	return strings.TrimSpace(v), nil
}

func validateEmail(s string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil || addr.Address != strings.TrimSpace(s) {
		return errors.New("enter a valid email address")
	}
	return nil
}

func validateNotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func validatePassword(s string) error {
	if len(s) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}
