package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"time"
)

func main() {
	serverAddr := flag.String("server", "http://localhost:8080", "Intake service base URL")
	text := flag.String("text", "Book cardiology tomorrow at 10am", "Appointment request text")
	flag.Parse()

	payload, err := json.Marshal(map[string]string{"text": *text})
	if err != nil {
		log.Fatalf("failed to marshal request: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	log.Printf("Sending text request: %q", *text)
	resp, err := client.Post(*serverAddr+"/v1/parse", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("failed to read response: %v", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		log.Fatalf("response is not valid JSON: %v (body: %s)", err, body)
	}

	log.Printf("Status: %s", resp.Status)
	log.Printf("Response:\n%s", pretty.String())
}
