// Package browser owns the WebDriver session revcheck drives the target
// page with.
//
// A Session bundles the chromedriver process and the remote WebDriver
// connection behind one handle with a single Close, so every exit path,
// including assertion failures mid-scenario, releases the browser. It also
// provides the small wait vocabulary the scenarios need:
//
//   - WaitClickable / WaitPresent: explicit waits bounded by the configured
//     timeout, polling until the condition holds
//   - Find: immediate lookup, no wait
//   - Exists: non-blocking existence probe, for "is this marker rendered"
//     questions where paying a full wait timeout on absence would be wrong
//
// All locators are XPath; the session does not know what the queries mean,
// only how to resolve them.
package browser
