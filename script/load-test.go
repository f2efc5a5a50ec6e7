package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// TransactionRequest is the POST /transactions/ payload
type TransactionRequest struct {
	UserID   string `json:"userId"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// TransactionResponse is the part of the 201 body the test inspects
type TransactionResponse struct {
	TxID          string `json:"txId"`
	GoerliBalance *struct {
		BalanceEth string `json:"balance_eth"`
	} `json:"goerli_balance"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Degraded     bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	DegradedResponses  int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	StatusCounts       map[int]int
	ErrorCounts        map[string]int
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "alice,bob,carol", "Comma-separated list of user IDs to distribute load across")
	currenciesStr := flag.String("currencies", "BTC,ETH,USD", "Comma-separated list of currencies")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	userIDs := splitFlag(*userIDsStr, "user1")
	currencies := splitFlag(*currenciesStr, "BTC")

	fmt.Printf("Load testing %s/transactions/ across %d users: %v\n", *baseURL, len(userIDs), userIDs)
	fmt.Printf("Concurrency: %d goroutines, %d requests, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, userIDs, currencies, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func splitFlag(value, fallback string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = []string{fallback}
	}
	return out
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.StatusCode != 0 {
		s.StatusCounts[result.StatusCode]++
	}
	if result.Success {
		s.SuccessfulRequests++
		if result.Degraded {
			s.DegradedResponses++
		}
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}
	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
}

func worker(baseURL string, delayMs int, userIDs, currencies []string, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 15 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		payload := TransactionRequest{
			UserID:   userIDs[rand.Intn(len(userIDs))],
			Amount:   fmt.Sprintf("%d.%02d", rand.Intn(10000), rand.Intn(100)),
			Currency: currencies[rand.Intn(len(currencies))],
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(baseURL+"/transactions/", "application/json", bytes.NewReader(jsonData))
		result := TestResult{ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		result.Success = resp.StatusCode == http.StatusCreated
		if result.Success {
			var body TransactionResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
				result.Degraded = body.GoerliBalance == nil
			}
		} else {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, rt := range sorted {
		total += rt
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Created (201):       %d\n", stats.SuccessfulRequests)
	fmt.Printf("  without balance:   %d\n", stats.DegradedResponses)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.SuccessfulRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
