package main

import (
	stdlog "log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"alfredoptarigan/hr-chatbot/internal/config"
	"alfredoptarigan/hr-chatbot/internal/repositories"
	"alfredoptarigan/hr-chatbot/internal/services"
)

func main() {
	app := &cli.App{
		Name:  "import-employees",
		Usage: "Load employees.json into the employees table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the employees JSON file",
				Value:   "employees.json",
			},
			&cli.StringFlag{
				Name:    "resumes",
				Aliases: []string{"r"},
				Usage:   "Directory of resume PDFs named after each employee, used to fill missing bios",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Parse and report without writing to the database",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Action: importEmployees,
	}

	if err := app.Run(os.Args); err != nil {
		stdlog.Fatal(err)
	}
}

func importEmployees(c *cli.Context) error {
	log, err := config.NewLogger(c.String("log-level"), "")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	employees, err := services.LoadCorpusFile(c.String("file"))
	if err != nil {
		return err
	}
	log.Info("employees parsed", zap.String("file", c.String("file")), zap.Int("count", len(employees)))

	if dir := c.String("resumes"); dir != "" {
		attached := services.AttachResumeBios(employees, dir, services.NewResumeParser(), log)
		log.Info("resume bios attached", zap.String("dir", dir), zap.Int("count", attached))
	}

	if c.Bool("dry-run") {
		log.Info("dry run, nothing written")
		return nil
	}

	cfg := config.Load()
	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return err
	}

	repo := repositories.NewEmployeeRepository(db)
	if err := repo.ReplaceAll(employees); err != nil {
		return err
	}

	total, err := repo.Count()
	if err != nil {
		return err
	}
	log.Info("import complete", zap.Int64("rows", total))
	return nil
}
