package font

import "context"
import "errors"
import "io/fs"
import "log/slog"

import "golang.org/x/image/font/sfnt"

import "github.com/vultureui/vtxt/errs"
import "github.com/vultureui/vtxt/internal/logger"
import "github.com/vultureui/vtxt/raster"

// Number of font slots in a [Registry].
const MaxFonts = 2

type slot struct {
	font       *sfnt.Font
	face       raster.Face
	lineHeight int // face.Ascent() + 2, or 0 if empty
}

// A Registry holds up to [MaxFonts] loaded fonts, indexed by slot id.
//
// The registry is either fully uninitialized (no slots, engine not
// initialized) or fully initialized. Initialization happens lazily on
// the first successful call to a load method, and [Registry.Shutdown]
// returns the registry to the uninitialized state.
//
// Registries are not safe for concurrent use. They are meant to be
// owned by the goroutine doing the rendering.
type Registry struct {
	engine raster.Engine
	slots  []slot
}

// Creates a new, uninitialized registry using the given engine. If
// engine is nil, a [raster.DefaultEngine] will be used.
func NewRegistry(engine raster.Engine) *Registry {
	if engine == nil {
		engine = raster.NewEngine()
	}
	return &Registry{engine: engine}
}

// Returns the registry's rasterization engine.
func (self *Registry) Engine() raster.Engine { return self.engine }

// Reports whether the registry is initialized.
func (self *Registry) Initialized() bool {
	return self.slots != nil && self.engine.WasInit()
}

// Loads the font at the given index of the given font file into the
// given slot, at the given point size. Font collections (.ttc, .otc)
// may contain multiple fonts; for regular font files, index must be 0.
//
// On success, any font previously loaded in the slot is released. On
// failure, the slot is left untouched and the previous font, if any,
// remains active.
func (self *Registry) Load(id int, path string, index int, pointSize float64) error {
	const op = "font.Load"
	if !validSlot(id) {
		return errs.New(op, errs.KindConfig, errs.ErrInvalidSlot)
	}
	err := self.init(op)
	if err != nil {
		return err
	}
	font, err := ParseFromPath(path, index)
	if err != nil {
		logger.Get().Warn("font load failed", "slot", id, "path", path, "err", err)
		return errs.New(op, errs.KindConfig, err)
	}
	return self.install(op, id, font, pointSize)
}

// Same as [Registry.Load], but taking the font bytes directly. The
// bytes must not be modified while the font is in use.
func (self *Registry) LoadBytes(id int, fontBytes []byte, index int, pointSize float64) error {
	const op = "font.LoadBytes"
	if !validSlot(id) {
		return errs.New(op, errs.KindConfig, errs.ErrInvalidSlot)
	}
	err := self.init(op)
	if err != nil {
		return err
	}
	font, err := ParseFromBytes(fontBytes, index)
	if err != nil {
		logger.Get().Warn("font load failed", "slot", id, "err", err)
		return errs.New(op, errs.KindConfig, err)
	}
	return self.install(op, id, font, pointSize)
}

// Same as [Registry.Load], but for filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func (self *Registry) LoadFS(id int, filesys fs.FS, path string, index int, pointSize float64) error {
	const op = "font.LoadFS"
	if !validSlot(id) {
		return errs.New(op, errs.KindConfig, errs.ErrInvalidSlot)
	}
	err := self.init(op)
	if err != nil {
		return err
	}
	font, err := ParseFromFS(filesys, path, index)
	if err != nil {
		logger.Get().Warn("font load failed", "slot", id, "path", path, "err", err)
		return errs.New(op, errs.KindConfig, err)
	}
	return self.install(op, id, font, pointSize)
}

// Returns the face loaded in the given slot, or nil if the id is out
// of range or the slot is empty.
func (self *Registry) Face(id int) raster.Face {
	if !validSlot(id) || self.slots == nil {
		return nil
	}
	return self.slots[id].face
}

// Returns the line height of the font loaded in the given slot, which
// is its ascent + 2 pixels. Out of range ids and empty slots return 0.
func (self *Registry) LineHeight(id int) int {
	if !validSlot(id) || self.slots == nil {
		return 0
	}
	return self.slots[id].lineHeight
}

// Returns the full name of the font loaded in the given slot.
func (self *Registry) Name(id int) (string, error) {
	font, err := self.slotFont("font.Name", id)
	if err != nil {
		return "", err
	}
	return GetName(font)
}

// Returns the runes of the text that the font in the given slot can't
// represent. Useful to validate translations and user input.
func (self *Registry) MissingRunes(id int, text string) ([]rune, error) {
	font, err := self.slotFont("font.MissingRunes", id)
	if err != nil {
		return nil, err
	}
	return GetMissingRunes(font, text)
}

// Releases all the loaded fonts and shuts down the rasterization
// engine. Shutdown is idempotent, and the registry can be reused
// afterwards: the next load will initialize it again.
func (self *Registry) Shutdown() {
	for id := range self.slots {
		current := &self.slots[id]
		if current.face != nil {
			err := current.face.Close()
			if err != nil {
				logger.Get().Warn("font close failed", "slot", id, "err", err)
			}
		}
		*current = slot{}
	}
	wasInit := self.slots != nil
	self.slots = nil
	self.engine.Quit()
	if wasInit {
		logger.Get().Info("font registry shut down")
	}
}

// ---- helpers ----

func validSlot(id int) bool {
	return id >= 0 && id < MaxFonts
}

func (self *Registry) init(op string) error {
	if !self.engine.WasInit() {
		err := self.engine.Init()
		if err != nil {
			logger.Get().Warn("rasterization engine init failed", "err", err)
			return errs.New(op, errs.KindConfig, errors.Join(errs.ErrInitFailed, err))
		}
	}
	if self.slots == nil {
		self.slots = make([]slot, MaxFonts)
	}
	return nil
}

func (self *Registry) install(op string, id int, font *sfnt.Font, pointSize float64) error {
	face, err := self.engine.OpenFace(font, pointSize)
	if err != nil {
		logger.Get().Warn("font face open failed", "slot", id, "size", pointSize, "err", err)
		return errs.New(op, errs.KindConfig, err)
	}

	current := &self.slots[id]
	if current.face != nil {
		err = current.face.Close()
		if err != nil {
			logger.Get().Warn("previous font close failed", "slot", id, "err", err)
		}
	}
	current.font = font
	current.face = face
	current.lineHeight = face.Ascent() + 2

	log := logger.Get()
	if log.Enabled(context.Background(), slog.LevelInfo) {
		name, _ := GetName(font)
		log.Info("font loaded", "slot", id, "name", name, "size", pointSize, "line_height", current.lineHeight)
	}
	return nil
}

func (self *Registry) slotFont(op string, id int) (*sfnt.Font, error) {
	if !validSlot(id) {
		return nil, errs.New(op, errs.KindConfig, errs.ErrInvalidSlot)
	}
	if self.slots == nil || self.slots[id].font == nil {
		return nil, errs.New(op, errs.KindConfig, errs.ErrEmptySlot)
	}
	return self.slots[id].font, nil
}
