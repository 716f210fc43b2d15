// Package locator centralizes every structural query revcheck issues against
// the target page.
//
// The page's DOM shape is an unversioned external contract: class names,
// sibling relationships, and literal label text can all drift without notice.
// Keeping every XPath in one provider means markup drift is fixed in exactly
// one place instead of being scattered through the scenarios.
package locator
