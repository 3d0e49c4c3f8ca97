package questionary

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"personavix_backend/internals/constants"
	"personavix_backend/internals/features/questionary/model"
)

type CharacteristicSeed struct {
	Text   string `json:"caracteristica"`
	Factor string `json:"fator"`
}

type QuestionSeed struct {
	Text            string               `json:"pergunta"`
	Characteristics []CharacteristicSeed `json:"caracteristicas"`
}

// SeedQuestionaryFromJSON memasukkan pertanyaan DISC beserta karakteristiknya.
// Pertanyaan yang teksnya sudah ada dilewati, jadi aman dijalankan ulang.
func SeedQuestionaryFromJSON(db *gorm.DB, log *slog.Logger, filePath string) error {
	log.Info("reading questionary seed", "file", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	var seeds []QuestionSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for i, q := range seeds {
		for _, ch := range q.Characteristics {
			if !constants.IsDiscFactor(ch.Factor) {
				return fmt.Errorf("question %d: unknown factor %q", i+1, ch.Factor)
			}
		}
	}

	var existing []string
	if err := db.Model(&model.QuestionModel{}).Pluck("pergunta", &existing).Error; err != nil {
		return fmt.Errorf("load existing questions: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[strings.TrimSpace(t)] = true
	}

	inserted := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, q := range seeds {
			text := strings.TrimSpace(q.Text)
			if text == "" || seen[text] {
				log.Debug("question already present, skipped", "pergunta", text)
				continue
			}
			question := model.QuestionModel{Text: text}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("insert question %q: %w", text, err)
			}

			chars := make([]model.DiscCharacteristicModel, 0, len(q.Characteristics))
			for _, ch := range q.Characteristics {
				chars = append(chars, model.DiscCharacteristicModel{
					QuestionID: question.ID,
					Text:       strings.TrimSpace(ch.Text),
					Factor:     ch.Factor,
				})
			}
			if len(chars) > 0 {
				if err := tx.Create(&chars).Error; err != nil {
					return fmt.Errorf("insert characteristics of %q: %w", text, err)
				}
			}
			seen[text] = true
			inserted++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if inserted == 0 {
		log.Info("no new questions to insert")
	} else {
		log.Info("questionary seeded", "inserted", inserted)
	}
	return nil
}
