// formflow-cli walks a form schema interactively on the terminal: it prompts
// for each currently-visible field, re-resolving visibility and active
// sections after every answer, then ranks the pattern library against the
// finished submission and prints the best automated answer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/pkg/faq"
	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/session"
	"github.com/goliatone/go-formflow/pkg/visibility"
)

func main() {
	schemaPath := flag.String("schema", "form.yaml", "schema document path")
	patternsPath := flag.String("patterns", "", "FAQ pattern document path (optional)")
	minScore := flag.Float64("min-score", 0, "minimum FAQ score to surface a match")
	verbose := flag.Bool("verbose", false, "log trigger and visibility diagnostics")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	data, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}
	formSchema, err := schema.Parse(data, *schemaPath)
	if err != nil {
		log.Fatalf("parse schema: %v", err)
	}

	var patterns []faq.Pattern
	if *patternsPath != "" {
		raw, err := os.ReadFile(*patternsPath)
		if err != nil {
			log.Fatalf("read patterns: %v", err)
		}
		patterns, err = faq.ParsePatterns(raw, *patternsPath)
		if err != nil {
			log.Fatalf("parse patterns: %v", err)
		}
	}

	sess := session.New(formSchema, session.WithLogger(logger))
	if formSchema.Title != "" {
		fmt.Println(formSchema.Title)
		fmt.Println()
	}

	if err := walk(sess); err != nil {
		log.Fatalf("prompt: %v", err)
	}

	if len(patterns) == 0 {
		fmt.Println("\nNo pattern library supplied; submission complete.")
		return
	}
	report(sess, patterns, *minScore)
}

// walk prompts until every currently-visible field has an answer. Answering
// one field can reveal or retire others, so the visible set is recomputed
// from scratch on each pass.
func walk(sess *session.Session) error {
	for {
		field, ok := nextUnanswered(sess)
		if !ok {
			return nil
		}

		value, err := ask(field)
		if err != nil {
			return err
		}
		sess.SetAnswer(field.ID, value)

		if visibility.OtherVisible(field, sess.Answers()) {
			var other string
			prompt := &survey.Input{Message: field.DisplayLabel() + " (other)"}
			if err := survey.AskOne(prompt, &other); err != nil {
				return err
			}
			sess.SetAnswer(field.ID+schema.OtherFieldSuffix, other)
		}
	}
}

func nextUnanswered(sess *session.Session) (schema.Field, bool) {
	for _, field := range sess.VisibleFields() {
		if _, answered := sess.Answer(field.ID); !answered {
			return field, true
		}
	}
	return schema.Field{}, false
}

func ask(field schema.Field) (any, error) {
	message := field.DisplayLabel()
	if field.Required {
		message += " *"
	}

	switch field.Type {
	case schema.FieldTypeSelect, schema.FieldTypeRadio:
		labels, byLabel := optionPrompts(field)
		var picked string
		prompt := &survey.Select{Message: message, Options: labels}
		if err := survey.AskOne(prompt, &picked); err != nil {
			return nil, err
		}
		return byLabel[picked], nil

	case schema.FieldTypeMultiSelect:
		labels, byLabel := optionPrompts(field)
		var picked []string
		prompt := &survey.MultiSelect{Message: message, Options: labels}
		if err := survey.AskOne(prompt, &picked); err != nil {
			return nil, err
		}
		values := make([]string, 0, len(picked))
		for _, label := range picked {
			values = append(values, byLabel[label])
		}
		return values, nil

	case schema.FieldTypeCheckbox:
		var confirmed bool
		prompt := &survey.Confirm{Message: message}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return nil, err
		}
		return confirmed, nil

	case schema.FieldTypeTextArea:
		var out string
		prompt := &survey.Multiline{Message: message}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, err
		}
		return out, nil

	default:
		var out string
		prompt := &survey.Input{Message: message, Default: field.Placeholder}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// optionPrompts maps display labels back to stored option values.
func optionPrompts(field schema.Field) ([]string, map[string]string) {
	labels := make([]string, 0, len(field.Options))
	byLabel := make(map[string]string, len(field.Options))
	for _, opt := range field.Options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		labels = append(labels, label)
		byLabel[label] = opt.Value
	}
	return labels, byLabel
}

func report(sess *session.Session, patterns []faq.Pattern, minScore float64) {
	results := sess.Submit(patterns, minScore)
	if len(results) == 0 {
		fmt.Println("\nNo FAQ pattern matched; routing to human escalation.")
		return
	}

	fmt.Printf("\nMatched %d pattern(s):\n", len(results))
	for _, result := range results {
		name := result.Pattern.Name
		if name == "" {
			name = "(unnamed pattern)"
		}
		fmt.Printf("  %6.2f  %s\n", result.Score, name)
	}

	top := results[0]
	answer := faq.SanitizeAnswer(faq.RenderAnswer(top.Pattern, sess.Answers()))
	fmt.Println("\nSuggested answer:")
	fmt.Println(answer)
}
