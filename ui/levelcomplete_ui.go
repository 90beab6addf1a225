package ui

import (
	"bytes"
	"fmt"
	"log"

	cfg "github.com/automoto/tileleap/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelCompleteUI is the overlay shown once the player reaches the end of
// a level.
type LevelCompleteUI struct {
	UI *ebitenui.UI

	levelLabel *widget.Label
	hintLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewLevelCompleteUI() *LevelCompleteUI {
	ui := &LevelCompleteUI{}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *LevelCompleteUI) loadFonts() {
	titleSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	normalSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: titleSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: normalSource, Size: 14}
}

func (ui *LevelCompleteUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.LevelComplete.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.LevelComplete.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.LevelComplete.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.levelLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: cfg.LevelComplete.TitleColor,
		}),
	)
	contentContainer.AddChild(ui.levelLabel)

	ui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: cfg.LevelComplete.HintColor,
		}),
	)
	contentContainer.AddChild(ui.hintLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update refreshes the labels. The continue hint only shows once a jump
// press would be accepted.
func (ui *LevelCompleteUI) Update(levelName string, acceptingInput bool) {
	ui.levelLabel.Label = fmt.Sprintf("%s cleared", levelName)
	if acceptingInput {
		ui.hintLabel.Label = cfg.LevelComplete.ContinueHint
	} else {
		ui.hintLabel.Label = ""
	}
	ui.UI.Update()
}

func (ui *LevelCompleteUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
