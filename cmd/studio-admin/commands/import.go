package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MeebitForge/MeebitStudio/server/internal/infra/catalog"
	"github.com/MeebitForge/MeebitStudio/server/internal/infra/storage"
)

var (
	importDBPath     string
	importRulesPath  string
	importPopulation string
)

// ImportCmd represents the import command
var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import data documents",
	Long:  `Import the rules document and the population database into SQLite.`,
	Run: func(cmd *cobra.Command, args []string) {
		if importRulesPath == "" && importPopulation == "" {
			fmt.Println("Error: at least one of --rules or --population is required")
			os.Exit(1)
		}

		runImport()
	},
}

func init() {
	ImportCmd.Flags().StringVar(&importDBPath, "db", "studio.db", "SQLite database path")
	ImportCmd.Flags().StringVar(&importRulesPath, "rules", "", "Rules document JSON path")
	ImportCmd.Flags().StringVar(&importPopulation, "population", "", "Population database JSON path")
}

func runImport() {
	ctx := context.Background()

	db, err := storage.InitSQLite(importDBPath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if importRulesPath != "" {
		raw, err := os.ReadFile(importRulesPath)
		if err != nil {
			fmt.Printf("Error reading rules file: %v\n", err)
			os.Exit(1)
		}
		// Validate before persisting so a broken file never lands in the DB.
		if _, err := catalog.ParseRulesDocument(raw); err != nil {
			fmt.Printf("Error parsing rules file: %v\n", err)
			os.Exit(1)
		}

		repo := storage.NewSQLiteRulesRepository(db)
		id, err := repo.Save(ctx, importRulesPath, string(raw))
		if err != nil {
			fmt.Printf("Error saving rules document: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported rules document from %s (revision %d)\n", importRulesPath, id)
	}

	if importPopulation != "" {
		candidates, err := catalog.LoadPopulation(importPopulation)
		if err != nil {
			fmt.Printf("Error loading population: %v\n", err)
			os.Exit(1)
		}

		repo := storage.NewSQLiteCandidateRepository(db)
		if err := repo.ReplaceAll(ctx, catalog.ToRecords(candidates)); err != nil {
			fmt.Printf("Error importing population: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d candidates from %s\n", len(candidates), importPopulation)
	}
}
