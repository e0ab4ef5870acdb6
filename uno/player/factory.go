package player

import (
	"fmt"
	"math/rand"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// SeatNames returns one display name per seat: the human first, then
// distinct computer names drawn from rng.
func SeatNames(numberOfPlayers int, humanPlayerName string, rng *rand.Rand) []string {
	if humanPlayerName == "" {
		humanPlayerName = "You"
	}
	names := make([]string, 0, numberOfPlayers)
	names = append(names, humanPlayerName)
	return append(names, generateBotNames(numberOfPlayers-1, rng)...)
}

func generateBotNames(amount int, rng *rand.Rand) []string {
	pool := make([]string, len(botNames))
	copy(pool, botNames)
	rng.Shuffle(len(pool), func(i int, j int) { pool[i], pool[j] = pool[j], pool[i] })
	names := make([]string, 0, amount)
	for index := 0; index < amount; index++ {
		if index < len(pool) {
			names = append(names, pool[index])
			continue
		}
		names = append(names, fmt.Sprintf("Bot %d", index+1))
	}
	return names
}
