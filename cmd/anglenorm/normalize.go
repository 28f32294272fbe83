package main

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/soypat/angle"
)

func init() {
	// A header that does not match the mode would otherwise decode as zeros.
	gocsv.FailIfUnmatchedStructTags = true
}

type angleRecord struct {
	Angle float64 `csv:"angle"`
}

type polarRecord struct {
	Azimuth  float64 `csv:"azimuth"`
	Altitude float64 `csv:"altitude"`
}

// normalize reads CSV records from r, reduces them as configured and writes
// them as CSV with the same header to w.
func normalize(cfg *Config, r io.Reader, w io.Writer) (int, error) {
	switch cfg.Mode {
	case ModePolar:
		var records []*polarRecord
		if err := gocsv.Unmarshal(r, &records); err != nil {
			return 0, fmt.Errorf("reading polar records: %w", err)
		}
		for _, rec := range records {
			rec.Azimuth, rec.Altitude = angle.NormalizePolar(rec.Azimuth, rec.Altitude, cfg.Unit)
		}
		return len(records), gocsv.Marshal(records, w)
	case ModeSigned, ModeUnsigned:
		var records []*angleRecord
		if err := gocsv.Unmarshal(r, &records); err != nil {
			return 0, fmt.Errorf("reading angle records: %w", err)
		}
		reduce := angle.SignedNormal
		if cfg.Mode == ModeUnsigned {
			reduce = angle.UnsignedNormal
		}
		for _, rec := range records {
			rec.Angle = reduce(rec.Angle, cfg.Unit)
		}
		return len(records), gocsv.Marshal(records, w)
	}
	return 0, fmt.Errorf("unknown mode %q", cfg.Mode)
}
