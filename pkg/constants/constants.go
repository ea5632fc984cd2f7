package constants

//============== STORAGE KEYS ==============

// Keys under which each collection is persisted as a JSON array.
const (
	StorageKeyTeams       = "gg_teams"
	StorageKeyEquipments  = "gg_equipments"
	StorageKeyWorkCenters = "gg_workcenters"
	StorageKeyRequests    = "gg_requests"
	StorageKeyPortalUsers = "gg_portal_users"
)

// AllStorageKeys lists every key the application owns.
var AllStorageKeys = []string{
	StorageKeyTeams,
	StorageKeyEquipments,
	StorageKeyWorkCenters,
	StorageKeyRequests,
	StorageKeyPortalUsers,
}

//============== CACHE KEYS ==============

// Format: revoked_token:<jti>
const CacheKeyRevokedToken = "revoked_token:%s"

//============== REQUEST STAGES ==============

const (
	StageNewRequest = "New Request"
	StageInProgress = "In Progress"
	StageRepaired   = "Repaired"
	StageScrap      = "Scrap"
)

// Stages in pipeline order.
var Stages = []string{StageNewRequest, StageInProgress, StageRepaired, StageScrap}

func IsValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// StageColor is the badge colour used on the board.
func StageColor(stage string) string {
	switch stage {
	case StageNewRequest:
		return "purple"
	case StageInProgress:
		return "blue"
	case StageRepaired:
		return "emerald"
	case StageScrap:
		return "red"
	}
	return "emerald"
}

//============== REQUEST FIELDS ==============

const (
	MaintenanceForEquipment  = "Equipment"
	MaintenanceForWorkCenter = "Work Center"

	TypeCorrective = "Corrective"
	TypePreventive = "Preventive"
)

const (
	DefaultTeam    = "Internal Maintenance"
	DefaultCompany = "My Company (San Francisco)"
	UnknownUser    = "Unknown"
)

var priorityLabels = []string{"Low", "Medium", "High", "Critical"}

const MaxPriority = 3

// PriorityLabel maps 0..3 onto Low..Critical; out-of-range values are clamped.
func PriorityLabel(priority int) string {
	if priority < 0 {
		priority = 0
	}
	if priority > MaxPriority {
		priority = MaxPriority
	}
	return priorityLabels[priority]
}
