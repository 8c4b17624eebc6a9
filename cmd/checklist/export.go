package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paul0Junior/checklist-eng/internal/model"
	"github.com/Paul0Junior/checklist-eng/internal/store"
)

var exportUser string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Imprime o histórico de respostas de um usuário",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _, s, cleanup, err := openEnvironment(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		user, err := s.GetUserByUsername(cmd.Context(), exportUser)
		if errors.Is(err, store.ErrUserNotFound) {
			return fmt.Errorf("usuário %q não existe", exportUser)
		}
		if err != nil {
			return err
		}

		responses, err := s.ResponsesForUser(cmd.Context(), user.Username)
		if err != nil {
			return err
		}
		if len(responses) == 0 {
			fmt.Printf("Nenhuma resposta registrada para %q.\n", exportUser)
			return nil
		}

		for _, r := range responses {
			questionID := "-"
			if r.QuestionID != nil {
				questionID = fmt.Sprintf("%d", *r.QuestionID)
			}
			fmt.Printf("%s  tema=%d  pergunta=%s  %s  %s\n",
				r.RecordedAt.Format(model.TimestampLayout),
				r.ThemeID,
				questionID,
				r.State().Label(),
				r.Observation,
			)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportUser, "user", "u", "", "username to export")
	exportCmd.MarkFlagRequired("user")
}
