package model

import "slices"

// Bot strategy constants
const (
	BotStrategyGreedy = "greedy"
	BotStrategyRandom = "random"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyGreedy:
		return "Greedy"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyGreedy, BotStrategyRandom}
}

// IsValidBotStrategy reports whether the name is a known strategy
func IsValidBotStrategy(strategy string) bool {
	return slices.Contains(ValidBotStrategies(), strategy)
}
