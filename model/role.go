package model

import (
	"strings"
)

type Role string

const (
	ROLE_UNKNOWN Role = "UNK"
	ROLE_BAT     Role = "BAT"
	ROLE_BOWL    Role = "BOWL"
	ROLE_AR      Role = "AR"
	ROLE_WK      Role = "WK"
)

// ParseRole normalizes the many spellings upstream feeds use for a player's
// role. Keeper variants win over batting variants because keepers are listed
// as "WK-Batsman" in most squads.
func ParseRole(role string) Role {
	role = strings.ToLower(strings.TrimSpace(role))
	switch {
	case strings.Contains(role, "wk"), strings.Contains(role, "keeper"):
		return ROLE_WK
	case strings.Contains(role, "allrounder"), strings.Contains(role, "all-rounder"), role == "ar":
		return ROLE_AR
	case strings.Contains(role, "bowl"):
		return ROLE_BOWL
	case strings.Contains(role, "bat"):
		return ROLE_BAT
	default:
		return ROLE_UNKNOWN
	}
}

func (r Role) Friendly() string {
	switch r {
	case ROLE_BAT:
		return "Batsman"
	case ROLE_BOWL:
		return "Bowler"
	case ROLE_AR:
		return "All-Rounder"
	case ROLE_WK:
		return "Wicket-Keeper"
	default:
		return "Unknown"
	}
}
