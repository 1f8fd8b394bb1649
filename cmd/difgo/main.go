package main

import (
	. "difgo/internal/config"
	"difgo/internal/diff"
	"difgo/internal/git"
	. "difgo/internal/highlighter"
	"difgo/internal/history"
	. "difgo/internal/logger"
	"difgo/internal/render"
	"difgo/internal/server"
	"difgo/internal/ui"
	. "difgo/internal/utils"
	"difgo/internal/watch"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
)

func main() {
	Log.Start()
	conf := GetConfig()

	mode := flag.String("mode", "", "unified or split")
	context := flag.Int("context", -1, "equal lines kept around changes, 0 shows everything")
	width := flag.Int("width", 160, "total width of the split view")
	gitFlag := flag.Bool("git", false, "diff FILE against its HEAD version")
	watchFlag := flag.Bool("watch", false, "re-diff whenever either file changes")
	serve := flag.Bool("serve", false, "start the web server")
	tui := flag.Bool("tui", false, "open the interactive viewer")
	copyFlag := flag.Bool("copy", false, "copy the plain unified diff to the clipboard")
	save := flag.Bool("save", false, "record the comparison in history")
	statsOnly := flag.Bool("stats", false, "print the counts only")
	flag.Parse()

	if *mode != "" { conf.Mode = *mode }
	if *context >= 0 { conf.Context = *context }

	if *serve {
		err := server.NewServer(conf).Listen()
		if err != nil { fail(err) }
		return
	}

	var left, right, leftName, rightName string
	var err error

	if *gitFlag {
		if flag.NArg() != 1 { usage() }
		rightName = flag.Arg(0)
		leftName = "HEAD:" + rightName
		left, err = git.HeadFileContent(rightName)
		if err != nil { fail(err) }
		right, err = ReadFileToString(rightName)
		if err != nil { fail(err) }
	} else {
		if flag.NArg() != 2 { usage() }
		leftName, rightName = flag.Arg(0), flag.Arg(1)
		left, err = readInput(leftName)
		if err != nil { fail(err) }
		right, err = readInput(rightName)
		if err != nil { fail(err) }
	}

	// the engine is total, the size ceiling lives out here
	if len(diff.SplitLines(left)) > conf.MaxLines || len(diff.SplitLines(right)) > conf.MaxLines {
		fail(fmt.Errorf("input exceeds %d lines, raise maxlines in the config", conf.MaxLines))
	}

	script := diff.Diff(left, right)
	stats := diff.CollectStats(script)

	if *save {
		hist := history.History{File: conf.HistoryFile, Max: conf.HistoryMax}
		_, err = hist.Add(left, right, stats)
		if err != nil { Log.Error("history save failed:", err.Error()) }
	}

	if *tui {
		HighlighterGlobal.SetTheme(conf.Theme)
		viewer := ui.Viewer{Script: script, Config: conf, LeftName: leftName, RightName: rightName}
		viewer.Start()
		return
	}

	if *statsOnly {
		fmt.Printf("+%d -%d ~%d\n", stats.Add, stats.Delete, stats.Change)
		return
	}

	text := renderScript(script, conf, *width)
	if *copyFlag {
		err = clipboard.WriteAll(render.Plain(text))
		if err != nil { fail(err) }
	}
	fmt.Println(text)

	if *watchFlag {
		if leftName == "-" || rightName == "-" || *gitFlag {
			fail(fmt.Errorf("watch needs two file paths"))
		}
		watchLoop(conf, leftName, rightName, *width)
	}
}

func renderScript(script []diff.EditOp, conf Config, width int) string {
	if conf.Mode == "split" {
		return render.Split(script, width, conf.Context)
	}
	return render.Unified(script, conf.Context)
}

func watchLoop(conf Config, leftName string, rightName string, width int) {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)

	pw := watch.NewPairWatcher(leftName, rightName)
	pw.StartWatch(func(path string) {
		Log.Info("changed", path)
		left, errLeft := ReadFileToString(leftName)
		right, errRight := ReadFileToString(rightName)
		if errLeft != nil || errRight != nil { return }

		script := diff.Diff(left, right)
		stats := diff.CollectStats(script)
		fmt.Printf("\n+%d -%d ~%d\n", stats.Add, stats.Delete, stats.Change)
		fmt.Println(renderScript(script, conf, width))
	})

	<-done
	pw.StopWatch()
}

func readInput(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil { return "", fmt.Errorf("error reading stdin: %w", err) }
		return string(data), nil
	}
	return ReadFileToString(name)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: difgo [flags] LEFT RIGHT   (use - for stdin)")
	fmt.Fprintln(os.Stderr, "       difgo -git FILE")
	fmt.Fprintln(os.Stderr, "       difgo -serve")
	flag.PrintDefaults()
	os.Exit(2)
}
