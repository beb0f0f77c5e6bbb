// import-file runs the spreadsheet ingestion pipeline against a local file
// and prints the row accounting plus the derived dashboard aggregates.
// Useful for checking a mapping against a real export before uploading it.
//
// Usage:
//
//	go run ./cmd/import-file -file uygunsuzluk.xlsx \
//	  -mapping '{"description":"Açıklama","source":"Kaynak","severity":"Önem","status":"Durum"}'
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fabrikaops/nonconf_backend/config"
	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/models/reports"
)

func main() {
	config.LoadEnv()

	filePath := flag.String("file", "", "path to the .xlsx/.xls/.xlsm file to import")
	mappingJSON := flag.String("mapping", "", "field to column mapping as JSON (description is required)")
	flag.Parse()

	if *filePath == "" || *mappingJSON == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !models.IsImportableFile(*filePath) {
		fmt.Fprintln(os.Stderr, "unsupported file extension:", *filePath)
		os.Exit(1)
	}

	var mapping models.FieldMapping
	if err := json.Unmarshal([]byte(*mappingJSON), &mapping); err != nil {
		fmt.Fprintln(os.Stderr, "invalid mapping:", err)
		os.Exit(1)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	store := models.NewStore()
	result, err := models.ImportWorkbook(store, f, mapping, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "import failed:", err)
		os.Exit(1)
	}

	fmt.Printf("rows: %d  imported: %d  skipped: %d\n", result.Total, result.Imported, result.Skipped)

	snapshot := store.Snapshot()
	fmt.Println("\nstatus distribution:")
	for _, lv := range reports.GetStatusDistribution(snapshot) {
		fmt.Printf("  %-12s %d\n", lv.Label, lv.Value)
	}
	fmt.Println("\nopen task timeliness:")
	for _, lv := range reports.GetOpenTaskTimeliness(snapshot, time.Now()) {
		fmt.Printf("  %-12s %d\n", lv.Label, lv.Value)
	}
	fmt.Println("\ncategories:")
	for _, slice := range reports.GetCategoryDistribution(snapshot) {
		fmt.Printf("  %-24s %d\n", slice.Label, slice.Value)
	}
	fmt.Println("\nresolution days by department:")
	for _, stat := range reports.GetResolutionByDepartment(snapshot) {
		fmt.Printf("  %-24s min=%d avg=%d max=%d\n", stat.Group, stat.Min, stat.Average, stat.Max)
	}
}
