package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Paul0Junior/checklist-eng/internal/store"
)

var registerPassword string

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Registra um novo usuário sem abrir a interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, s, cleanup, err := openEnvironment(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		username := args[0]
		password := registerPassword
		if password == "" {
			prompt := huh.NewInput().
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Value(&password)
			if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
		}

		err = s.RegisterUser(cmd.Context(), username, password)
		if errors.Is(err, store.ErrUsernameTaken) {
			return fmt.Errorf("usuário %q já existe", username)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Usuário %q registrado com sucesso.\n", username)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(
		&registerPassword, "password", "p", "", "password (prompted when omitted)",
	)
}
