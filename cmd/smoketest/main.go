package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const baseURL = "http://localhost:8080"

const jobDescription = "Senior Backend Engineer, Python, AWS, fintech, Boston"

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Smoke Test...")

	// 1. Health
	fmt.Println("1. Health check...")
	if _, ok := sendRequest("GET", "/health", nil); !ok {
		fmt.Println("FAILED: Health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health check")

	job := map[string]interface{}{
		"description":    jobDescription,
		"num_candidates": 2,
	}

	// 2. Search
	fmt.Println("2. Searching candidates...")
	searchBody, ok := sendRequest("POST", "/search", job)
	if !ok {
		fmt.Println("FAILED: Search")
		os.Exit(1)
	}
	var candidates []map[string]interface{}
	if err := json.Unmarshal(searchBody, &candidates); err != nil || len(candidates) == 0 {
		fmt.Println("FAILED: Search returned no candidates")
		os.Exit(1)
	}
	fmt.Println("PASSED: Search")

	// 3. Score
	fmt.Println("3. Scoring candidates...")
	scoreBody, ok := sendRequest("POST", "/score", map[string]interface{}{
		"job":        job,
		"candidates": candidates,
	})
	if !ok {
		fmt.Println("FAILED: Score")
		os.Exit(1)
	}
	var scored []map[string]interface{}
	if err := json.Unmarshal(scoreBody, &scored); err != nil || len(scored) != len(candidates) {
		fmt.Println("FAILED: Score count mismatch")
		os.Exit(1)
	}
	fmt.Println("PASSED: Score")

	// 4. Outreach
	fmt.Println("4. Generating outreach...")
	if _, ok := sendRequest("POST", "/outreach", map[string]interface{}{
		"job":               job,
		"scored_candidates": scored,
	}); !ok {
		fmt.Println("FAILED: Outreach")
		os.Exit(1)
	}
	fmt.Println("PASSED: Outreach")

	// 5. Full pipeline
	fmt.Println("5. Running full pipeline...")
	if _, ok := sendRequest("POST", "/full-pipeline", job); !ok {
		fmt.Println("FAILED: Full pipeline")
		os.Exit(1)
	}
	fmt.Println("PASSED: Full pipeline")
}

func sendRequest(method, endpoint string, payload interface{}) ([]byte, bool) {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}

	fmt.Printf("Response: %s\n", string(respBody))
	return respBody, true
}
