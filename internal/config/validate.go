package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.CalendarProviderURL == "" {
		return errors.New("CALENDAR_PROVIDER_URL environment variable is required")
	}
	if cfg.IntakeHistoryURL == "" {
		return errors.New("INTAKE_HISTORY_URL environment variable is required")
	}
	return nil
}

func (c DeliveryConfig) Validate() error {
	// Delivery is optional locally; when any gcloud field is set, all of
	// them must be.
	gcloudFields := []string{c.GCloudProjectID, c.GCloudLocationID, c.GCloudQueueID, c.GCloudTargetURL}
	anySet := false
	allSet := true
	for _, f := range gcloudFields {
		if f != "" {
			anySet = true
		} else {
			allSet = false
		}
	}
	if anySet && !allSet {
		return errors.New("GCLOUD_PROJECT_ID, GCLOUD_LOCATION_ID, GCLOUD_QUEUE_ID and GCLOUD_TARGET_URL must all be set together")
	}
	return nil
}
