package tlgen

import "strings"

// DefaultHeader is the license header written at the top of every file
const DefaultHeader = `// Copyright 2026 - developers of the ` + "`tlgen`" + ` project.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.
`

// GeneratedMarker marks generated files for tools and reviewers
const GeneratedMarker = "// Code generated by tlgen. DO NOT EDIT."

// normalizeHeader makes sure every header line is a line comment and the
// header ends with a newline. Already-commented lines are kept verbatim.
func normalizeHeader(header string) string {
	if header == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(header, "\n"), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "//") {
			continue
		}
		if line == "" {
			lines[i] = "//"
		} else {
			lines[i] = "// " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
