package calculator

import (
	"github.com/MyCarrier-DevOps/go-nextver/internal/config"
	"github.com/MyCarrier-DevOps/go-nextver/internal/version"
)

func nextCalVer(cfg *config.Config, in Input) (Result, error) {
	if cfg.OverrideVersion != "" {
		baseline, err := version.ParseCalVer(cfg.OverrideVersion)
		if err != nil {
			return Result{}, invalidVersionError("override-version", err)
		}
		return Result{
			NewVersion:      baseline.Next(in.Now, cfg.ResetPolicy).String(),
			PreviousVersion: cfg.OverrideVersion,
		}, nil
	}

	latest, ok := version.Latest(in.Tags, version.TryParseCalVer, version.CalendarVersion.CompareTo)
	if !ok {
		// No baseline: the first version of the current calendar period.
		return Result{
			NewVersion:      version.Start(in.Now).String(),
			PreviousVersion: NoPreviousVersion,
		}, nil
	}

	return Result{
		NewVersion:      latest.Version.Next(in.Now, cfg.ResetPolicy).String(),
		PreviousVersion: latest.Tag,
	}, nil
}
