package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/battlegrid/pkg/battle"
	"github.com/gonewx/battlegrid/pkg/config"
	"github.com/gonewx/battlegrid/pkg/game"
	"github.com/gonewx/battlegrid/pkg/surface"
	"github.com/gonewx/battlegrid/pkg/systems"
)

// SetupScene 布阵场景
// 组装文档、网格布局、布阵编排器以及输入/渲染系统
type SetupScene struct {
	doc    *surface.Document
	layout *surface.GridLayout
	page   *surface.Page
	battle *battle.Battle

	inputSystem  *systems.BattleInputSystem
	renderSystem *systems.RenderSystem

	settings *game.SettingsManager
}

// NewSetupScene 根据布阵配置创建场景
// 初始站位越界等启动错误直接返回，不进入场景
func NewSetupScene(cfg *config.BattleConfig, settings *game.SettingsManager) (*SetupScene, error) {
	doc := surface.NewDocument(float64(cfg.Window.Width), float64(cfg.Window.Height))
	layout := surface.NewGridLayout(cfg.Grid)
	page := layout.Build(doc)

	roster := make([]battle.Character, 0, len(cfg.Roster))
	for _, c := range cfg.Roster {
		roster = append(roster, battle.Character{ID: c.ID, Name: c.Name})
	}

	b, err := battle.NewBattle(&battle.Config{
		Surface:     doc,
		Container:   page.Container,
		CellAnchors: page.Cells,
		Roster:      roster,
		CardType:    cfg.CardType,
	})
	if err != nil {
		return nil, fmt.Errorf("create battle: %w", err)
	}

	// 卡片元素创建后再布局一次，使卡片获得格子尺寸
	layout.Apply(doc, page)

	if err := b.InstantiatePlayers(cfg.InitialCells); err != nil {
		return nil, fmt.Errorf("initial placement: %w", err)
	}

	s := &SetupScene{
		doc:          doc,
		layout:       layout,
		page:         page,
		battle:       b,
		inputSystem:  systems.NewBattleInputSystem(b, doc),
		renderSystem: systems.NewRenderSystem(doc, b, cfg.Window.Title),
		settings:     settings,
	}
	if settings != nil {
		s.renderSystem.SetShowDebug(settings.GetSettings().ShowDebug)
	}

	log.Printf("[SetupScene] 场景就绪: %d 行网格, %d 名角色", cfg.Grid.Rows, len(roster))
	return s, nil
}

// Battle 返回布阵编排器
func (s *SetupScene) Battle() *battle.Battle { return s.battle }

// Document 返回页面文档
func (s *SetupScene) Document() *surface.Document { return s.doc }

// Update 处理调试开关与指针输入
func (s *SetupScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.ToggleDebug()
	}
	s.inputSystem.Update(deltaTime)
}

// ToggleDebug 切换调试信息并保存设置
func (s *SetupScene) ToggleDebug() {
	if s.settings == nil {
		return
	}
	show := s.settings.ToggleDebug()
	s.renderSystem.SetShowDebug(show)
	if err := s.settings.Save(); err != nil {
		log.Printf("[SetupScene] 保存设置失败: %v", err)
	}
}

// Draw 绘制页面
func (s *SetupScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// Resize 视口尺寸变化：重新布局并刷新卡片位置
func (s *SetupScene) Resize(width, height int) {
	s.doc.SetViewport(float64(width), float64(height))
	s.layout.Apply(s.doc, s.page)

	queue := s.inputSystem.Queue()
	queue.Push(battle.InputEvent{Kind: battle.EventResize})
	s.battle.DrainQueue(queue)
}
