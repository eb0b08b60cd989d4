// Package prefs persists per-application settings records on disk.
//
// A Store combines three pieces of identity, an application name, a storage
// Location and a serialization Format, into the path of one settings file,
// and provides Save, Load and Delete against that path for any serializable
// record type:
//
//	type Settings struct {
//	    Theme  string `json:"theme"`
//	    Width  int    `json:"width"`
//	    Height int    `json:"height"`
//	}
//
//	store := prefs.New[Settings]("MyApp") // <config root>/MyApp/config.json
//	if err := store.Save(&Settings{Theme: "dark", Width: 1280, Height: 800}); err != nil {
//	    log.Fatal(err)
//	}
//	loaded, err := store.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = loaded
//	if err := store.Delete(); err != nil {
//	    log.Fatal(err)
//	}
//
// Locations select the path strategy: Auto (platform config directory, the
// default), FullPath (use a path verbatim), FileName (derived directory with
// a custom file name) and Directory (custom directory with the derived file
// name). Formats select the encoding: JSON (default), JSONIndent, YAML, TOML,
// INI and Gob, with RegisterFormat for host-defined codecs.
//
// Stores hold no open resources and no cached state; every operation
// re-resolves the path from the identity and runs to completion
// synchronously. Two stores, or two processes, pointed at the same path are
// not coordinated. See Store for the concurrency contract.
package prefs
