package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/quiz"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
	"github.com/MeebitForge/MeebitStudio/server/internal/events"
	"github.com/MeebitForge/MeebitStudio/server/internal/infra/catalog"
	"github.com/MeebitForge/MeebitStudio/server/internal/infra/storage"
	"github.com/MeebitForge/MeebitStudio/server/internal/matcher"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/logger"
)

var (
	quizDBPath     string
	quizPopulation string
	quizAnswers    string
	quizWorkers    int
)

// QuizCmd represents the quiz command
var QuizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a quiz simulation",
	Long: `Run the personality quiz against the candidate population and print
the ranked matches. Answers are comma separated answer indices, one per
question; use -1 to skip a question.`,
	Run: func(cmd *cobra.Command, args []string) {
		if quizAnswers == "" {
			fmt.Println("Error: --answers is required")
			os.Exit(1)
		}

		runQuiz()
	},
}

func init() {
	QuizCmd.Flags().StringVar(&quizDBPath, "db", "studio.db", "SQLite database path")
	QuizCmd.Flags().StringVar(&quizPopulation, "population", "", "Population JSON path (overrides --db)")
	QuizCmd.Flags().StringVar(&quizAnswers, "answers", "", "Comma separated answer indices")
	QuizCmd.Flags().IntVar(&quizWorkers, "workers", 4, "Scoring worker count")

	QuizCmd.MarkFlagRequired("answers")
}

func parseAnswers(raw string) ([]quiz.AnswerIndex, error) {
	parts := strings.Split(raw, ",")
	answers := make([]quiz.AnswerIndex, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid answer index %q", p)
		}
		answers = append(answers, quiz.AnswerIndex(n))
	}
	return answers, nil
}

func loadQuizPopulation(ctx context.Context) ([]*trait.Candidate, error) {
	if quizPopulation != "" {
		return catalog.LoadPopulation(quizPopulation)
	}

	db, err := storage.InitSQLite(quizDBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	records, err := storage.NewSQLiteCandidateRepository(db).GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FromRecords(records), nil
}

func runQuiz() {
	ctx := context.Background()

	answers, err := parseAnswers(quizAnswers)
	if err != nil {
		fmt.Printf("Error parsing answers: %v\n", err)
		os.Exit(1)
	}

	population, err := loadQuizPopulation(ctx)
	if err != nil {
		fmt.Printf("Error loading population: %v\n", err)
		os.Exit(1)
	}
	if len(population) == 0 {
		fmt.Println("No candidates loaded. Run 'studio-admin import' first.")
		os.Exit(1)
	}

	m := matcher.NewMatcher(population, quizWorkers, events.NewEventLog(nil), nil, logger.NewLogger())
	outcome, err := m.Match(ctx, "cli", answers)
	if err != nil {
		fmt.Printf("Error running match: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Answered %d of %d questions against %d candidates:\n\n",
		outcome.Answered, len(quiz.Questions), len(population))
	for i, r := range outcome.Results {
		fmt.Printf("%d. Meebit #%d - %s (%.1f%%)\n", i+1, r.Candidate.TokenID, r.Title, r.Score)
		fmt.Printf("   Type: %s", r.Candidate.Type)
		if shirt := r.Candidate.Value(trait.CategoryShirt); shirt != "" {
			fmt.Printf(", Shirt: %s", shirt)
		}
		fmt.Println()
		fmt.Printf("   %s\n\n", r.Story)
	}
	if len(outcome.PreferNone) > 0 {
		fmt.Printf("Preferred without: %s\n", strings.Join(outcome.PreferNone, ", "))
	}
}
