package plate

// Record is one admitted, corrected and classified detection.
type Record struct {
	ImageID    string  `json:"image_id"`
	Text       string  `json:"text"`
	Region     string  `json:"region"`
	Confidence float64 `json:"confidence"`
}

// BuildRecord composes a record. The confidence is copied from det as is.
// An empty region is reported as UnknownRegion.
func BuildRecord(imageID string, det RawDetection, corrected, region string) Record {
	if region == "" {
		region = UnknownRegion
	}
	return Record{
		ImageID:    imageID,
		Text:       corrected,
		Region:     region,
		Confidence: det.Confidence,
	}
}
