// Command mediscan-samples posts a fixed batch of sample symptom requests to
// a running predict endpoint and writes the combined responses as JSON, CSV
// and Markdown summaries.
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mediscan/diagnosis/engine"
)

type cliOptions struct {
	url       string
	outputDir string
	timeout   time.Duration
}

type sampleRequest struct {
	Symptoms    []string `json:"symptoms"`
	Description string   `json:"description"`
}

type sampleResult struct {
	Request  sampleRequest  `json:"request"`
	Response *engine.Result `json:"response,omitempty"`
	Error    string         `json:"error,omitempty"`
}

var samples = []sampleRequest{
	{Symptoms: []string{"sneezing", "runny_nose", "sore_throat"}, Description: "Runny nose and sore throat"},
	{Symptoms: []string{"fever", "chills", "muscle_ache"}, Description: "High fever and body aches"},
	{Symptoms: []string{"loss_of_taste_or_smell", "cough"}, Description: "Sudden loss of smell and cough"},
	{Symptoms: []string{"flank_pain", "nausea", "vomiting"}, Description: "Severe flank pain with vomiting"},
	{Symptoms: []string{"chest_pain", "shortness_of_breath"}, Description: "Chest pain and difficulty breathing"},
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		log.Fatalf("mediscan-samples: %v", err)
	}
}

func parseFlags() cliOptions {
	var opts cliOptions
	flag.StringVar(&opts.url, "url", "http://localhost:8000/predict", "Predict endpoint URL")
	flag.StringVar(&opts.outputDir, "output-dir", "outputs", "Directory where sample reports are written")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-request timeout")
	flag.Parse()
	return opts
}

func run(opts cliOptions) error {
	client := &http.Client{Timeout: opts.timeout}
	results := make([]sampleResult, 0, len(samples))
	for _, s := range samples {
		results = append(results, post(client, opts.url, s))
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	stamp := time.Now().Format("20060102_150405")
	base := filepath.Join(opts.outputDir, "samples_"+stamp)

	if err := writeJSON(base+".json", results); err != nil {
		return err
	}
	if err := writeCSV(base+".csv", results); err != nil {
		return err
	}
	if err := writeMarkdown(base+".md", results); err != nil {
		return err
	}
	log.Printf("saved sample responses to %s.{json,csv,md}", base)
	return nil
}

func post(client *http.Client, url string, req sampleRequest) sampleResult {
	res := sampleResult{Request: req}
	body, err := json.Marshal(req)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if resp.StatusCode != http.StatusOK {
		res.Error = fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		return res
	}
	var result engine.Result
	if err := json.Unmarshal(data, &result); err != nil {
		res.Error = fmt.Sprintf("invalid JSON response: %v", err)
		return res
	}
	res.Response = &result
	return res
}

func writeJSON(path string, results []sampleResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, results []sampleResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"timestamp", "request_description", "top_disease", "top_probability", "urgency", "status", "error"}); err != nil {
		return err
	}
	now := time.Now().Format(time.RFC3339)
	for _, r := range results {
		desc := r.Request.Description
		if desc == "" {
			desc = strings.Join(r.Request.Symptoms, " ")
		}
		row := []string{now, desc, "", "", "", "", r.Error}
		if r.Response != nil {
			if len(r.Response.Predictions) > 0 {
				top := r.Response.Predictions[0]
				row[2] = top.Disease
				row[3] = fmt.Sprintf("%.3f", top.Probability)
			}
			row[4] = string(r.Response.Urgency.Level)
			row[5] = string(r.Response.Status)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeMarkdown(path string, results []sampleResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sample Predict Responses — %s\n\n", time.Now().Format(time.RFC3339))
	for i, r := range results {
		fmt.Fprintf(&b, "## Sample %d\n\n", i+1)
		reqJSON, _ := json.Marshal(r.Request)
		fmt.Fprintf(&b, "**Request:** `%s`\n\n", reqJSON)
		if r.Error != "" {
			fmt.Fprintf(&b, "**Error:** %s\n\n", r.Error)
			continue
		}
		b.WriteString("**Predictions:**\n\n")
		for _, p := range r.Response.Predictions {
			fmt.Fprintf(&b, "- %s — %.1f%%\n", p.Disease, p.Probability*100)
		}
		fmt.Fprintf(&b, "\n**Urgency:** %s — %s\n\n", r.Response.Urgency.Level, r.Response.Urgency.Recommendation)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
