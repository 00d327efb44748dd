// Loadtest is a concurrent driver for the identify endpoint. It uploads a
// synthetic JPEG repeatedly and reports throughput, latency percentiles,
// and the observed breed distribution (which should converge to the
// configured selection weights).
//
// Usage:
//
//	go run loadtest.go -url http://localhost:8001/api/v1/identify -concurrency 10 -requests 200
//	go run loadtest.go -url http://localhost:8001/api/v1/identify -requests 1000 -csv results.csv
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// jpegHeader is enough of a JPEG for a declared image/jpeg upload; the
// server never inspects the bytes.
var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func main() {
	var (
		url         = flag.String("url", "http://localhost:8001/api/v1/identify", "Target URL")
		concurrency = flag.Int("concurrency", 10, "Number of concurrent workers")
		requests    = flag.Int("requests", 100, "Total number of requests to send")
		payloadKB   = flag.Int("payload-kb", 64, "Upload payload size in KiB")
		timeoutSec  = flag.Int("timeout", 15, "Per-request timeout in seconds")
	)

	outCSV := flag.String("csv", "", "Write per-request CSV to this file (optional)")
	verbose := flag.Bool("v", false, "Verbose per-request logging to stdout")
	flag.Parse()

	client := &http.Client{Timeout: time.Duration(*timeoutSec) * time.Second}

	payload := make([]byte, *payloadKB*1024)
	copy(payload, jpegHeader)

	body, contentType, err := buildMultipart(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build multipart body: %v\n", err)
		os.Exit(1)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	var total int32
	var success int32
	var failure int32

	breedCounts := make(map[string]int32)
	var breedMu sync.Mutex

	var allLatencies []time.Duration
	var latMu sync.Mutex

	statusCodes := make(map[int]int32)
	var statusMu sync.Mutex

	var csvFile *os.File
	var csvWriter *csv.Writer
	var csvMu sync.Mutex
	if *outCSV != "" {
		f, err := os.Create(*outCSV)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create csv file: %v\n", err)
			os.Exit(1)
		}
		csvFile = f
		csvWriter = csv.NewWriter(f)
		csvWriter.Write([]string{"idx", "timestamp", "breed", "confidence", "status", "duration_ms"})
	}

	testStart := time.Now()

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range jobs {
				atomic.AddInt32(&total, 1)
				start := time.Now()

				req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(body))
				if err != nil {
					atomic.AddInt32(&failure, 1)
					continue
				}
				req.Header.Set("Content-Type", contentType)

				resp, err := client.Do(req)
				dur := time.Since(start)

				latMu.Lock()
				allLatencies = append(allLatencies, dur)
				latMu.Unlock()

				if err != nil {
					atomic.AddInt32(&failure, 1)
					if *verbose {
						fmt.Printf("[%d] idx=%d error=%v\n", workerID, idx, err)
					}
					continue
				}

				statusMu.Lock()
				statusCodes[resp.StatusCode]++
				statusMu.Unlock()

				breed := "(unknown)"
				confidence := 0.0
				if resp.StatusCode == http.StatusOK {
					atomic.AddInt32(&success, 1)

					var parsed struct {
						Analysis struct {
							Breed      string  `json:"breed"`
							Confidence float64 `json:"confidence"`
						} `json:"analysis"`
					}
					if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Analysis.Breed != "" {
						breed = parsed.Analysis.Breed
						confidence = parsed.Analysis.Confidence
					}

					breedMu.Lock()
					breedCounts[breed]++
					breedMu.Unlock()
				} else {
					atomic.AddInt32(&failure, 1)
				}

				if csvWriter != nil {
					csvMu.Lock()
					csvWriter.Write([]string{
						fmt.Sprintf("%d", idx),
						time.Now().Format(time.RFC3339Nano),
						breed,
						fmt.Sprintf("%.1f", confidence),
						fmt.Sprintf("%d", resp.StatusCode),
						fmt.Sprintf("%.3f", float64(dur.Microseconds())/1000.0),
					})
					csvMu.Unlock()
				}

				if *verbose {
					fmt.Printf("[%d] idx=%d breed=%s confidence=%.1f status=%d dur=%v\n",
						workerID, idx, breed, confidence, resp.StatusCode, dur)
				}

				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}
		}(i)
	}

	go func() {
		for i := 0; i < *requests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	wg.Wait()
	testEnd := time.Now()

	if csvWriter != nil {
		csvWriter.Flush()
		csvFile.Close()
	}

	totalDuration := testEnd.Sub(testStart)
	throughput := float64(total) / totalDuration.Seconds()

	fmt.Println("--- Identify Load Test Summary ---")
	fmt.Printf("Target: %s\n", *url)
	fmt.Printf("Requests: %d  Concurrency: %d  Payload: %d KiB\n", *requests, *concurrency, *payloadKB)
	fmt.Printf("Total sent: %d  Success: %d  Failure: %d\n", total, success, failure)
	fmt.Printf("Duration: %v  Throughput: %.2f req/s\n", totalDuration, throughput)

	fmt.Println("\nStatus codes:")
	statusMu.Lock()
	var scKeys []int
	for k := range statusCodes {
		scKeys = append(scKeys, k)
	}
	sort.Ints(scKeys)
	for _, k := range scKeys {
		fmt.Printf("  %d -> %d\n", k, statusCodes[k])
	}
	statusMu.Unlock()

	fmt.Println("\nBreed distribution:")
	breedMu.Lock()
	var breedKeys []string
	for k := range breedCounts {
		breedKeys = append(breedKeys, k)
	}
	sort.Strings(breedKeys)
	for _, k := range breedKeys {
		count := breedCounts[k]
		share := 0.0
		if success > 0 {
			share = float64(count) / float64(success) * 100
		}
		fmt.Printf("  %-12s -> %5d (%.1f%%)\n", k, count, share)
	}
	breedMu.Unlock()

	if len(allLatencies) > 0 {
		tmp := make([]time.Duration, len(allLatencies))
		copy(tmp, allLatencies)
		sort.Slice(tmp, func(i, j int) bool { return tmp[i] < tmp[j] })
		var sum time.Duration
		for _, d := range tmp {
			sum += d
		}
		avg := sum / time.Duration(len(tmp))
		p := func(pct float64) time.Duration {
			idx := int(float64(len(tmp)-1) * pct)
			return tmp[idx]
		}
		fmt.Println("\nLatencies:")
		fmt.Printf("  samples=%d min=%v avg=%v max=%v p50=%v p90=%v p95=%v p99=%v\n",
			len(tmp), tmp[0], avg, tmp[len(tmp)-1], p(0.50), p(0.90), p(0.95), p(0.99))
	}

	if failure > 0 {
		os.Exit(2)
	}
}

func buildMultipart(payload []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="cow.jpg"`)
	header.Set("Content-Type", "image/jpeg")

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
