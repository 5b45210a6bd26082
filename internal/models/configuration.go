package models

// Regions lists the Cloud Run regions offered by the configuration wizard.
var Regions = []string{
	"us-central1",
	"us-east1",
	"us-east4",
	"us-west1",
	"northamerica-northeast1",
	"southamerica-east1",
	"europe-west1",
	"europe-west4",
	"asia-east1",
	"asia-northeast1",
	"asia-southeast1",
	"asia-south1",
	"australia-southeast1",
}

// CPUTiers lists the selectable vCPU counts.
var CPUTiers = []string{"1", "2", "4", "8"}

// MemoryTiers lists the selectable memory sizes, smallest first.
var MemoryTiers = []string{"512Mi", "1Gi", "2Gi", "4Gi", "8Gi", "16Gi"}

// memoryBands maps a CPU tier to the recommended [min,max] indices into
// MemoryTiers. Selections outside the band are a warning, not an error.
var memoryBands = map[string][2]int{
	"1": {0, 2}, // 512Mi - 2Gi
	"2": {1, 3}, // 1Gi - 4Gi
	"4": {2, 4}, // 2Gi - 8Gi
	"8": {3, 5}, // 4Gi - 16Gi
}

// MemoryBand returns the recommended memory range for a CPU tier.
func MemoryBand(cpu string) (min, max string, ok bool) {
	band, ok := memoryBands[cpu]
	if !ok {
		return "", "", false
	}
	return MemoryTiers[band[0]], MemoryTiers[band[1]], true
}

// MemoryInBand reports whether the memory selection falls inside the
// recommended band for the CPU tier. Unknown tiers are treated as in-band
// so the check stays a soft policy.
func MemoryInBand(cpu, memory string) bool {
	band, ok := memoryBands[cpu]
	if !ok {
		return true
	}
	idx := -1
	for i, tier := range MemoryTiers {
		if tier == memory {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}
	return idx >= band[0] && idx <= band[1]
}

// Configuration is the validated deployment configuration collected from the
// operator. It is built once by the wizard (or flags) and never mutated after
// confirmation.
type Configuration struct {
	Region      string
	CPU         string
	Memory      string
	ServiceName string
	UUID        string
	HostDomain  string

	// Telegram settings; only meaningful when Notify.Enabled().
	BotToken   string
	ChannelURL string
	Notify     NotificationTarget
}
