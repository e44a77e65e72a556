package balldontlie

const providerName = "balldontlie"

type playersResponse struct {
	Data []playerResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

type playerResponse struct {
	ID        int          `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Position  string       `json:"position"`
	Team      teamResponse `json:"team"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type advancedResponse struct {
	Data []advancedAverages `json:"data"`
	Meta metaResponse       `json:"meta"`
}

// advancedAverages carries the season-average advanced stats we answer
// questions from. Percentages arrive as fractions (0.58 == 58%).
type advancedAverages struct {
	PlayerID          int     `json:"player_id"`
	Season            int     `json:"season"`
	TrueShootingPct   float64 `json:"ts_pct"`
	ReboundPct        float64 `json:"reb_pct"`
	AssistPct         float64 `json:"ast_pct"`
	UsagePct          float64 `json:"usg_pct"`
	PlayerEfficiency  float64 `json:"pie"`
	OffensiveBoxPM    float64 `json:"obpm"`
	DefensiveBoxPM    float64 `json:"dbpm"`
	DefensivePlusMin  float64 `json:"def_rating_delta"`
	NetRating         float64 `json:"net_rating"`
	MinutesPlayed     float64 `json:"min"`
	GamesPlayed       int     `json:"games_played"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
	NextCursor int `json:"next_cursor"`
}
