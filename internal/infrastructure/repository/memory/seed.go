package memory

import (
	"github.com/riskibarqy/football-scouting/internal/domain/player"
	"github.com/riskibarqy/football-scouting/internal/domain/squad"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
)

// Seed data used when the service runs without persistent storage.

func SeedTeams() []team.Team {
	return []team.Team{
		{Name: "Spain", League: "U17"},
		{Name: "France", League: "U17"},
		{Name: "Al Nassr", League: "Saudi Pro League"},
		{Name: "Al Hilal", League: "Saudi Pro League"},
	}
}

func SeedSquads() map[string][]squad.Player {
	return map[string][]squad.Player{
		"Spain": {
			{Name: "Marc Guiu", ShirtNumber: "9", Position: "ST", BirthYear: "2006"},
			{Name: "Pau Cubarsí", ShirtNumber: "5", Position: "CB", BirthYear: "2007"},
		},
		"France": {
			{Name: "Mathis Amougou", ShirtNumber: "8", Position: "CM", BirthYear: "2006"},
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{Name: "Marc Guiu", Country: "Spain", Club: "Chelsea", Position: "ST", BirthYear: "2006", Foot: "right"},
		{Name: "Pau Cubarsí", Country: "Spain", Club: "Barcelona", Position: "CB", BirthYear: "2007", Foot: "right"},
		{Name: "Mathis Amougou", Country: "France", Club: "Strasbourg", Position: "CM", BirthYear: "2006", Foot: "left"},
	}
}
