package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

func main() {
	serverAddr := flag.String("server", "http://localhost:8080", "Intake service base URL")
	imageFile := flag.String("image", "../../testdata/appointment-note.png", "Path to the scanned request image (PNG/JPEG/WebP)")
	flag.Parse()

	f, err := os.Open(*imageFile)
	if err != nil {
		log.Fatalf("failed to open image file: %v", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("image", filepath.Base(*imageFile))
	if err != nil {
		log.Fatalf("failed to create form file: %v", err)
	}
	n, err := io.Copy(fw, f)
	if err != nil {
		log.Fatalf("failed to read image: %v", err)
	}
	if err := mw.Close(); err != nil {
		log.Fatalf("failed to finalize form: %v", err)
	}

	log.Printf("Uploading %s (%d bytes)", *imageFile, n)

	// OCR requests can take a while against the real Vision backend
	client := &http.Client{Timeout: 60 * time.Second}

	resp, err := client.Post(*serverAddr+"/v1/parse", mw.FormDataContentType(), &buf)
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
