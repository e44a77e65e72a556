package chat

import (
	"fmt"

	"nba-chat-service/internal/domain"
)

// Reply outcome labels used for telemetry.
const (
	outcomeAnswered      = "answered"
	outcomeClarification = "clarification"
	outcomeUnavailable   = "unavailable"
	outcomeDeclined      = "declined"
)

func statReply(player string, metric domain.Metric, value float64) string {
	return fmt.Sprintf("%s's %s is %.1f.", player, metric, value)
}

func rankReply(winner, loser string, metric domain.Metric, winnerValue, loserValue float64) string {
	return fmt.Sprintf("%s has the better %s: %.1f against %s's %.1f.",
		winner, metric, winnerValue, loser, loserValue)
}

func tieReply(first, second string, metric domain.Metric, value float64) string {
	return fmt.Sprintf("It's a tie: %s and %s both have a %s of %.1f.",
		first, second, metric, value)
}

func clarifyFormatReply() string {
	return `Sorry, I didn't follow that. Try asking like: "What is Kobe Bryant's true shooting percentage?" or "Who is a better shooter Kobe Bryant or LeBron James?"`
}

func clarifyNameReply(fragment string) string {
	if fragment == "" {
		return "I couldn't tell which player you meant. Could you use their full name?"
	}
	return fmt.Sprintf("I couldn't match %q to a player I know. Could you use their full name?", fragment)
}

func clarifyMetricReply(fragment string) string {
	if fragment == "" {
		return "I couldn't tell which stat you're after. Try something like true shooting percentage or player efficiency rating."
	}
	return fmt.Sprintf("I couldn't match %q to a stat I track. Try something like true shooting percentage or player efficiency rating.", fragment)
}

func unavailableReply(player string, metric domain.Metric) string {
	return fmt.Sprintf("I don't have %s numbers for %s right now.", metric, player)
}

func outcomeReply() string {
	return "I can't predict games or seasons, but I'm happy to compare player stats."
}

func declineReply() string {
	return "I only know basketball. Ask me about an NBA player or stat."
}
