package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	AccountStats       map[int]int    // Requests per synthetic account
	ScenarioStats      map[string]int // Requests per scenario
	Lock               sync.Mutex
}

// InvestScenario defines an investment submission scenario
type InvestScenario struct {
	Name   string
	FirmID string
	Amount string
}

// account is a synthetic signed-up user with its session cookie jar
type account struct {
	index  int
	email  string
	client *http.Client
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	accounts := flag.Int("a", 3, "Number of synthetic accounts to sign up and spread load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the platform")
	password := flag.String("p", "LoadTest1", "Password for the synthetic accounts")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	scenarios := []InvestScenario{
		{"Invest Small", "1", "10.00"},
		{"Invest Medium", "1", "250.00"},
		{"Invest Large", "2", "1000.00"},
		{"Invest Odd Cents", "2", "33.33"},
		{"Invest Other Firm", "3", "500.00"},
	}

	fmt.Printf("Load testing investment submissions at %s\n", *baseURL)
	fmt.Printf("Synthetic accounts: %d\n", *accounts)
	fmt.Printf("Investment scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Sign up and log in the synthetic accounts before the clock starts
	fmt.Println("Preparing accounts...")
	prepared := make([]*account, 0, *accounts)
	runID := time.Now().UnixNano()
	for i := 0; i < *accounts; i++ {
		acc, err := prepareAccount(*baseURL, runID, i, *password)
		if err != nil {
			fmt.Printf("Failed to prepare account %d: %v\n", i, err)
			continue
		}
		prepared = append(prepared, acc)
	}
	if len(prepared) == 0 {
		fmt.Println("No accounts could be prepared; is the server running?")
		return
	}

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Replaced by the first sample
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		AccountStats:    make(map[int]int),
		ScenarioStats:   make(map[string]int),
	}
	for _, acc := range prepared {
		stats.AccountStats[acc.index] = 0
	}
	for _, scenario := range scenarios {
		stats.ScenarioStats[scenario.Name] = 0
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, prepared, scenarios, jobs, results, stats)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

// prepareAccount signs up a fresh user and logs it in. The cookie jar keeps
// the session for all requests made through the returned client.
func prepareAccount(baseURL string, runID int64, index int, password string) (*account, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{
		Timeout: 10 * time.Second,
		Jar:     jar,
	}

	email := fmt.Sprintf("loadtest-%d-%d@example.com", runID, index)

	signupForm := url.Values{
		"username":         {fmt.Sprintf("loadtest-%d", index)},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	}
	resp, err := client.PostForm(baseURL+"/signup", signupForm)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	loginForm := url.Values{
		"email":    {email},
		"password": {password},
	}
	resp, err = client.PostForm(baseURL+"/login", loginForm)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	// A session cookie proves the login landed
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	for _, cookie := range jar.Cookies(parsed) {
		if cookie.Name == "mi_session" && cookie.Value != "" {
			return &account{index: index, email: email, client: client}, nil
		}
	}
	return nil, fmt.Errorf("login did not set a session cookie for %s", email)
}

func worker(id int, baseURL string, delayMs int, accounts []*account,
	scenarios []InvestScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for jobID := range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		acc := accounts[rand.Intn(len(accounts))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.AccountStats[acc.index]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		form := url.Values{
			"firm_id":        {scenario.FirmID},
			"transaction_id": {fmt.Sprintf("load-%d-%d-%d", id, jobID, rand.Intn(1000000))},
			"amount":         {scenario.Amount},
		}

		req, err := http.NewRequest("POST", baseURL+"/invest", strings.NewReader(form.Encode()))
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		startTime := time.Now()
		resp, err := acc.client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			statusCode := resp.StatusCode
			result.StatusCode = statusCode
			// A submission answers with a redirect; the client follows it to
			// the opportunities page, so 2xx is the success signal here
			result.Success = (statusCode >= 200 && statusCode < 400)
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	totalAccounts := 0
	for _, count := range stats.AccountStats {
		totalAccounts += count
	}
	for index, count := range stats.AccountStats {
		if count > 0 {
			fmt.Printf("Account %d:    %d requests (%.1f%%)\n", index, count,
				float64(count)/float64(totalAccounts)*100)
		}
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-18s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}

	fmt.Println("================================================")
}
