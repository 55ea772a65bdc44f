//go:build linux

// zhuyind-ibus is the Linux IBus front end for the zhuyind composition
// engine.
//
// It connects to the IBus daemon via D-Bus, routes printable key events
// through a Composer for the configured arrangement, and commits the
// assembled Bopomofo reading when the syllable is complete. The config
// file is watched so arrangement switches apply live.
//
// Installation:
//  1. Copy the binary to /usr/local/bin/zhuyind-ibus
//  2. Run zhuyind-ibus -install
//  3. Restart IBus: ibus restart
//  4. Enable via ibus-setup or the desktop keyboard settings
package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/godbus/dbus/v5"

	"zhuyind/internal/composer"
	"zhuyind/internal/config"
	"zhuyind/internal/history"
	"zhuyind/internal/logging"
)

const (
	engineInterface = "org.freedesktop.IBus.Engine"
	enginePath      = "/org/freedesktop/IBus/Engine"

	zhuyindBusName = "org.zhuyind.IBus"
)

// X11 keysyms the engine reacts to beyond plain characters.
const (
	keysymBackSpace = 0xff08
	keysymReturn    = 0xff0d
	keysymEscape    = 0xff1b
)

func main() {
	installFlag := flag.Bool("install", false, "install the IBus component")
	uninstallFlag := flag.Bool("uninstall", false, "uninstall the IBus component")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if *installFlag {
		if err := installComponent(); err != nil {
			logging.Default().Error("install failed", "error", err)
			os.Exit(1)
		}
		logging.Default().Info("installed; run 'ibus restart' to load")
		return
	}
	if *uninstallFlag {
		if err := uninstallComponent(); err != nil {
			logging.Default().Error("uninstall failed", "error", err)
			os.Exit(1)
		}
		logging.Default().Info("uninstalled")
		return
	}

	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		logging.Default().Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.FromAppConfig(cfg.Logging, "zhuyind-ibus"))
	if err != nil {
		logger = logging.Default()
	}
	logging.SetDefault(logger)
	defer logger.Close()

	engine, err := newEngine(cfg, logger)
	if err != nil {
		logger.Error("engine init failed", "error", err)
		os.Exit(1)
	}
	defer engine.close()

	// Arrangement and correction switches apply live.
	loader.OnChange(engine.applyConfig)
	if err := loader.Watch(); err != nil {
		logger.Warn("config watch unavailable", "error", err)
	}
	defer loader.Close()

	conn, err := dbus.SessionBus()
	if err != nil {
		logger.Error("session bus connect failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(zhuyindBusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		logger.Error("bus name request failed", "error", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		logger.Error("bus name already taken", "name", zhuyindBusName)
		os.Exit(1)
	}

	if err := conn.Export(engine, enginePath, engineInterface); err != nil {
		logger.Error("engine export failed", "error", err)
		os.Exit(1)
	}

	logger.Info("zhuyind IBus engine started", "layout", engine.layoutName())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("shutting down")
}

// ibusEngine implements the IBus Engine D-Bus interface around one
// Composer.
type ibusEngine struct {
	mu       sync.Mutex
	composer *composer.Composer
	store    *history.Store
	logger   *logging.Logger
	display  config.DisplayConfig
}

func newEngine(cfg *config.Config, logger *logging.Logger) (*ibusEngine, error) {
	l, err := cfg.Layout()
	if err != nil {
		return nil, err
	}

	e := &ibusEngine{
		composer: composer.New("", l, cfg.Input.Correction),
		logger:   logger,
		display:  cfg.Display,
	}

	if cfg.History.Enabled {
		path := cfg.History.Path
		if path == "" {
			path = config.DefaultHistoryPath()
		}
		store, err := history.Open(path)
		if err != nil {
			logger.Warn("history unavailable", "error", err)
		} else {
			e.store = store
		}
	}
	return e, nil
}

func (e *ibusEngine) close() {
	if e.store != nil {
		e.store.Close()
	}
}

func (e *ibusEngine) layoutName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.composer.Layout().String()
}

// applyConfig switches the live composer to a freshly loaded config.
func (e *ibusEngine) applyConfig(cfg *config.Config) {
	l, err := cfg.Layout()
	if err != nil {
		e.logger.Warn("ignoring config change", "error", err)
		return
	}
	e.mu.Lock()
	e.composer.SetLayout(l)
	e.composer.SetCorrection(cfg.Input.Correction)
	e.composer.Clear()
	e.display = cfg.Display
	e.mu.Unlock()
	e.logger.Info("arrangement switched", "layout", l.String())
}

// ProcessKeyEvent handles key press/release events. Returning true
// consumes the key; false passes it through to the application.
func (e *ibusEngine) ProcessKeyEvent(keyval, keycode, state uint32) (bool, *dbus.Error) {
	const releaseMask = 1 << 30
	if state&releaseMask != 0 {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// A romanization buffer can be pending while every slot is still
	// empty, so check both before letting editing keys through.
	pending := !e.composer.IsEmpty() || e.composer.RomajiBuffer() != ""

	switch keyval {
	case keysymBackSpace:
		if !pending {
			return false, nil
		}
		e.composer.DoBackspace()
		return true, nil
	case keysymEscape:
		if !pending {
			return false, nil
		}
		e.composer.Clear()
		return true, nil
	case keysymReturn:
		if !pending {
			return false, nil
		}
		e.commit()
		return true, nil
	}

	key := keyvalToRune(keyval)
	if key == 0 {
		return false, nil
	}
	if !e.composer.InputValidityCheck(key) {
		return false, nil
	}

	e.composer.ReceiveKeyRune(key)

	// A tone completes the syllable on Bopomofo arrangements.
	if !e.composer.IsPinyinMode() && e.composer.HasTone(false) && e.composer.IsPronounceable() {
		e.commit()
	}
	return true, nil
}

// commit records the finished syllable and resets the composer. The
// caller holds the lock.
func (e *ibusEngine) commit() {
	reading := e.composer.Composition(false, false)
	if reading == "" {
		e.composer.Clear()
		return
	}
	pinyinForm := e.composer.Composition(true, false)

	if e.store != nil {
		if err := e.store.Record(reading, pinyinForm, e.composer.Layout().String()); err != nil {
			e.logger.Warn("history record failed", "error", err)
		}
	}
	e.logger.Debug("committed", "reading", reading, "pinyin", pinyinForm)
	e.composer.Clear()
}

// Preedit returns the current inline composition string.
func (e *ibusEngine) Preedit() (string, *dbus.Error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.composer.InlineDisplay(e.display.Pinyin), nil
}

// FocusIn is called when the engine gains focus.
func (e *ibusEngine) FocusIn() *dbus.Error {
	return nil
}

// FocusOut abandons any half-typed syllable.
func (e *ibusEngine) FocusOut() *dbus.Error {
	e.mu.Lock()
	e.composer.Clear()
	e.mu.Unlock()
	return nil
}

// Reset resets the engine state.
func (e *ibusEngine) Reset() *dbus.Error {
	e.mu.Lock()
	e.composer.Clear()
	e.mu.Unlock()
	return nil
}

// Enable is called when the engine is enabled.
func (e *ibusEngine) Enable() *dbus.Error { return nil }

// Disable is called when the engine is disabled.
func (e *ibusEngine) Disable() *dbus.Error {
	e.mu.Lock()
	e.composer.Clear()
	e.mu.Unlock()
	return nil
}

// keyvalToRune converts an X11 keysym to a Unicode rune.
func keyvalToRune(keyval uint32) rune {
	if keyval >= 0x20 && keyval <= 0x7e {
		return rune(keyval)
	}
	if keyval >= 0xa0 && keyval <= 0xff {
		return rune(keyval)
	}
	if keyval >= 0x01000000 {
		return rune(keyval - 0x01000000)
	}
	return 0
}

func installComponent() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	componentDir := filepath.Join(home, ".local", "share", "ibus", "component")
	if err := os.MkdirAll(componentDir, 0o755); err != nil {
		return err
	}

	binPath, err := os.Executable()
	if err != nil {
		binPath = "/usr/local/bin/zhuyind-ibus"
	}

	componentXML := `<?xml version="1.0" encoding="utf-8"?>
<component>
    <name>org.zhuyind.ibus</name>
    <description>Zhuyind Mandarin phonetic composition</description>
    <exec>` + binPath + `</exec>
    <version>1.0.0</version>
    <author>Zhuyind</author>
    <license>MIT</license>
    <textdomain>zhuyind</textdomain>
    <engines>
        <engine>
            <name>zhuyind</name>
            <language>zh_TW</language>
            <license>MIT</license>
            <author>Zhuyind</author>
            <icon>zhuyind</icon>
            <layout>us</layout>
            <longname>Zhuyind</longname>
            <description>Bopomofo and Pinyin phonetic keyboard</description>
            <rank>99</rank>
            <symbol>ㄅ</symbol>
        </engine>
    </engines>
</component>`

	return os.WriteFile(filepath.Join(componentDir, "zhuyind.xml"), []byte(componentXML), 0o644)
}

func uninstallComponent() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(home, ".local", "share", "ibus", "component", "zhuyind.xml"))
}
