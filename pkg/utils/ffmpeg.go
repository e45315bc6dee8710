package utils

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration returns the media duration in whole seconds, rounded.
func ProbeDuration(videoPath string) (int64, error) {
	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, errors.WithMessage(err, "ffprobe failed")
	}
	return parseProbeDuration(out)
}

func parseProbeDuration(out string) (int64, error) {
	var res probeResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		return 0, errors.Wrap(err, "decode ffprobe output")
	}
	if res.Format.Duration == "" {
		return 0, errors.New("ffprobe output has no duration")
	}
	d, err := strconv.ParseFloat(res.Format.Duration, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse duration %q", res.Format.Duration)
	}
	return int64(math.Round(d)), nil
}

// GetVideoThumbnail grabs the first frame of videoPath as a jpeg in outputDir.
func GetVideoThumbnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "Failed to create folders")
	}
	outputPath := filepath.Join(outputDir, "thumbnail.jpg")
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "Failed to generate the thumbnail")
	}
	return outputPath, nil
}
