// Package settings persists the small amount of state redcode keeps between
// sessions: the path of the most recently opened file, used as the starting
// location of the next open dialog.
//
// The settings file is a JSON object with a single key, "loadfrom". It lives
// in the working directory as settings.json unless REDCODE_SETTINGS points
// elsewhere.
//
// A missing file is not an error: [Load] creates it with the user's home
// directory as the default. [LoadOrDefault] additionally falls back to the
// default record, with a warning, when the file cannot be read or parsed.
package settings
