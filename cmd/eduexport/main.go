package main

import (
	"encoding/json"
	"fmt"
	"os"

	"eduexport/export"
	"eduexport/logger"
)

// activityFile is the on-disk shape of one generated activity, as the
// upstream platform stores it.
type activityFile struct {
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	ActivityType string      `json:"activity_type"`
	Content      interface{} `json:"content"`
	Scheme       string      `json:"scheme,omitempty"`
}

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: eduexport <activity.json> <word|spreadsheet|presentation> [output-file]")
		os.Exit(1)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading activity file: %v\n", err)
		os.Exit(1)
	}

	var activity activityFile
	if err := json.Unmarshal(raw, &activity); err != nil {
		fmt.Printf("Error parsing activity file: %v\n", err)
		os.Exit(1)
	}

	format, ok := export.ParseFormat(os.Args[2])
	if !ok {
		fmt.Printf("Unknown format %q (want word, spreadsheet or presentation)\n", os.Args[2])
		os.Exit(1)
	}

	service := export.NewExportService()
	log := logger.NewLogger()
	if err := log.Init(os.TempDir()); err == nil {
		defer log.Close()
		service.SetLogger(log)
	}

	result, err := service.Export(export.ExportRequest{
		Title:        activity.Title,
		Description:  activity.Description,
		ActivityType: export.ActivityType(activity.ActivityType),
		Content:      activity.Content,
		Format:       format,
		Scheme:       export.SchemeName(activity.Scheme),
	})
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		os.Exit(1)
	}

	output := result.SuggestedFilename
	if len(os.Args) > 3 {
		output = os.Args[3]
	}
	if err := os.WriteFile(output, result.Bytes, 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", output, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d bytes, %s)\n", output, len(result.Bytes), result.ContentType)
}
