// Package domain holds the index records, naming rules and configuration of the repository generator.
package domain
