package main

// The API process: a JSON surface over the BMI calculators consumed by the website.
// /debug/vars and /debug/pprof are served on Server.DebugHost.
func main() {
	startWithDig()
}
