package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sentineldata/riskintel/internal/domain/entity"
	"github.com/sentineldata/riskintel/internal/domain/risk"
)

// entityFile is the JSON schema accepted by `riskctl score`.
type entityFile struct {
	ID     string `json:"entity_id"`
	Events []struct {
		Category    string `json:"category"`
		SubCategory string `json:"sub_category"`
		Date        string `json:"date"`
		Description string `json:"description"`
	} `json:"events"`
	Attributes []struct {
		CodeType string `json:"code_type"`
		Value    string `json:"value"`
	} `json:"attributes"`
	Addresses []struct {
		Country string `json:"country"`
		City    string `json:"city"`
		Type    string `json:"type"`
	} `json:"addresses"`
	Relationships []struct {
		Type            string `json:"type"`
		CounterpartName string `json:"counterpart_name"`
		Direction       string `json:"direction"`
	} `json:"relationships"`
	Aliases         []string `json:"aliases"`
	Identifications []struct {
		Country string `json:"country"`
		Type    string `json:"type"`
		Number  string `json:"number"`
	} `json:"identifications"`
}

// toRecord converts the file schema to the domain record, dropping malformed
// event dates the same way the repository does.
func (f *entityFile) toRecord() *entity.EntityRecord {
	rec := &entity.EntityRecord{
		ID:      f.ID,
		Aliases: f.Aliases,
	}
	for _, e := range f.Events {
		ev := entity.Event{
			CategoryCode:    e.Category,
			SubCategoryCode: e.SubCategory,
			Description:     e.Description,
		}
		if d, ok := entity.ParseEventDate(e.Date); ok {
			ev.Date = &d
		}
		rec.Events = append(rec.Events, ev)
	}
	for _, a := range f.Attributes {
		rec.Attributes = append(rec.Attributes, entity.AttributeTag{CodeType: a.CodeType, RawValue: a.Value})
	}
	for _, a := range f.Addresses {
		rec.Addresses = append(rec.Addresses, entity.Address{Country: a.Country, City: a.City, Type: a.Type})
	}
	for _, r := range f.Relationships {
		rec.Relationships = append(rec.Relationships, entity.Relationship{
			Type: r.Type, CounterpartName: r.CounterpartName, Direction: r.Direction,
		})
	}
	for _, d := range f.Identifications {
		rec.Identifications = append(rec.Identifications, entity.IdentityDocument{
			Country: d.Country, Type: d.Type, Number: d.Number,
		})
	}
	return rec
}

func newScoreCommand(opts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "score <entity.json>",
		Short: "Score an entity profile from a local JSON file",
		Long:  "Runs the full scoring pipeline over a profile JSON file and prints the assessment.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read profile: %w", err)
			}
			var file entityFile
			if err := json.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("failed to parse profile: %w", err)
			}
			if file.ID == "" {
				return fmt.Errorf("profile is missing entity_id")
			}

			now := time.Now()
			if at != "" {
				now, err = time.Parse("2006-01-02", at)
				if err != nil {
					return fmt.Errorf("invalid --at date %q: expected YYYY-MM-DD", at)
				}
			}

			ref, err := loadReference(opts)
			if err != nil {
				return err
			}
			if err := ref.Validate(); err != nil {
				return fmt.Errorf("reference data invalid: %w", err)
			}

			engine := risk.NewEngine(ref)
			assessment := engine.ScoreAt(file.toRecord(), now)

			out, err := json.MarshalIndent(assessment, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "score as of this date (YYYY-MM-DD) instead of now")
	return cmd
}
