package stats

// KeyCount is one row of a GROUP BY count.
type KeyCount struct {
	Key   string
	Count int64
}

type UserStats struct {
	Total  int64            `json:"total"`
	ByRole map[string]int64 `json:"byRole"`
}

type ProjectStats struct {
	Total  int64            `json:"total"`
	ByType map[string]int64 `json:"byType"`
}

type TicketStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByPriority map[string]int64 `json:"byPriority"`
}

type EquipmentStats struct {
	Total       int64            `json:"total"`
	ByCondition map[string]int64 `json:"byCondition"`
}

type Overview struct {
	Users     UserStats      `json:"users"`
	Projects  ProjectStats   `json:"projects"`
	Tickets   TicketStats    `json:"tickets"`
	Equipment EquipmentStats `json:"equipment"`
}

// Fold turns GROUP BY rows into a map pre-seeded with every known key at zero,
// and returns the sum.
func Fold[K ~string](known []K, rows []KeyCount) (map[string]int64, int64) {
	out := make(map[string]int64, len(known))
	for _, k := range known {
		out[string(k)] = 0
	}
	var total int64
	for _, r := range rows {
		out[r.Key] += r.Count
		total += r.Count
	}
	return out, total
}
