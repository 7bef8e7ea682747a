package flow

// State is the screen the game is on. Exactly one is active.
type State int

const (
	MainMenu State = iota
	Info
	WorldSelect
	UnlockPrompt
	StadiumSelect
	CharacterSelect
	Playing
	GameOver
	Fallen
	Won
	Completed
)

var stateNames = map[State]string{
	MainMenu:        "main-menu",
	Info:            "info",
	WorldSelect:     "world-select",
	UnlockPrompt:    "unlock-prompt",
	StadiumSelect:   "stadium-select",
	CharacterSelect: "character-select",
	Playing:         "playing",
	GameOver:        "game-over",
	Fallen:          "fallen",
	Won:             "won",
	Completed:       "completed",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Result reports whether s is one of the end-of-level screens.
func (s State) Result() bool {
	return s == GameOver || s == Fallen || s == Won || s == Completed
}

// Offer is what the win screen proposes next.
type Offer int

const (
	OfferNone Offer = iota
	OfferNextLevel
	OfferUnlockWorld
	OfferNeedCoins
	OfferCompleted
)

func (o Offer) String() string {
	switch o {
	case OfferNextLevel:
		return "next-level"
	case OfferUnlockWorld:
		return "unlock-world"
	case OfferNeedCoins:
		return "need-coins"
	case OfferCompleted:
		return "completed"
	}
	return "none"
}
