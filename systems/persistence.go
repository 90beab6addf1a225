package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// SavedProgress is the player's progress stored between runs.
type SavedProgress struct {
	LevelIndex     int `json:"levelIndex"`     // Level to resume on
	LevelsFinished int `json:"levelsFinished"` // Total level completions
}

var gdataManager *gdata.Manager

// InitPersistence opens the save storage. Without it progress is neither
// loaded nor saved.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress returns the saved progress, or nil when there is none.
func LoadProgress() (*SavedProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// SaveLevelFinished records that a level was finished and next is the one
// to resume on.
func SaveLevelFinished(next int) {
	if gdataManager == nil {
		return
	}

	progress, err := LoadProgress()
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
	}
	if progress == nil {
		progress = &SavedProgress{}
	}
	progress.LevelIndex = next
	progress.LevelsFinished++

	data, err := json.Marshal(progress)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
