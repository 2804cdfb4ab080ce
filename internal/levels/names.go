// Package levels contains the level select definitions of Rhythm Tengoku and
// decoders for the requirement chains and flags referenced by the level table.
package levels

import "fmt"

// GameCount is the number of rhythm game levels. Level IDs 0 to GameCount-1
// are games, higher IDs are remixes and extra screens.
const GameCount = 41

// NullID marks an unused level table slot.
const NullID = -1

// levelNames is indexed by level ID + 1.
var levelNames = []string{
	"NULL",
	// rhythm games
	"KARATE_MAN",
	"KARATE_MAN_2",
	"CLAPPY_TRIO",
	"CLAPPY_TRIO_2",
	"SNEAKY_SPIRITS",
	"SNEAKY_SPIRITS_2",
	"NIGHT_WALK",
	"NIGHT_WALK_2",
	"POLYRHYTHM",
	"POLYRHYTHM_2",
	"BOUNCY_ROAD",
	"BOUNCY_ROAD_2",
	"TOSS_BOYS",
	"TOSS_BOYS_2",
	"RAT_RACE",
	"TRAM_PAULINE",
	"SPACE_DANCE",
	"COSMIC_DANCE",
	"RHYTHM_TWEEZERS",
	"RHYTHM_TWEEZERS_2",
	"QUIZ_SHOW",
	"POWER_CALLIGRAPHY",
	"FIREWORKS",
	"FIREWORKS_2",
	"TAP_TRIAL",
	"TAP_TRIAL_2",
	"MARCHING_ORDERS",
	"MARCHING_ORDERS_2",
	"BON_ODORI",
	"BON_DANCE",
	"WIZARDS_WALTZ",
	"SHOWTIME",
	"NINJA_BODYGUARD",
	"NINJA_REINCARNATE",
	"SNAPPY_TRIO",
	"SICK_BEATS",
	"BUNNY_HOP",
	"RAP_MEN",
	"RAP_WOMEN",
	"SPACEBALL",
	"SPACEBALL_2",
	// remixes and extras
	"REMIX_1",
	"REMIX_2",
	"REMIX_3",
	"REMIX_4",
	"REMIX_5",
	"REMIX_6",
	"REMIX_7",
	"REMIX_8",
	"CREDITS",
}

// LevelName returns the name of a level ID, IDs without a known name are
// returned as number.
func LevelName(id int16) string {
	idx := int(id) + 1
	if idx < 0 || idx >= len(levelNames) {
		return fmt.Sprintf("LEVEL_%d", id)
	}
	return levelNames[idx]
}

// IsGame returns whether the level ID refers to a rhythm game level.
func IsGame(id int16) bool {
	return id >= 0 && id < GameCount
}
