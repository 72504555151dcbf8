package app

// MinPlayersToStartGame defines the minimum number of occupied seats required to start a round.
// A single player may start: the solo mode plays all four colors.
const MinPlayersToStartGame = 1

// MaxPlayers is the seat count of a Punto table.
const MaxPlayers = 4
