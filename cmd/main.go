package main

import (
	"fmt"
	"os"

	"matchday/internal/config"
	"matchday/internal/logger"
	"matchday/internal/migrate"
	"matchday/internal/service"
	"matchday/internal/storage"
	"matchday/internal/storage/sqlite"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)
	db, err := storage.New(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	err = migrate.Up(db)
	if err != nil {
		return err
	}
	st := sqlite.New(db)
	matchService := service.New(st, st, st, cfg.Rating, log)

	squads, err := matchService.ListSquads()
	if err != nil {
		return err
	}
	for _, squad := range squads {
		members, err := matchService.SquadRatings(squad.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", squad.Name)
		for i, member := range members {
			fmt.Printf("%3d. %-20s %4d (%d games)\n",
				i+1, member.Player.Name, member.Rating.Value(), member.GamesPlayed)
		}
	}
	return nil
}
