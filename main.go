// @title Plataforma de Feedback - Cursos Livres API
// @version 1.0
// @description 课程反馈单页应用的后端服务：收集反馈并提供聚合报表。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"curso_feedback_backend/internal/app"
	"curso_feedback_backend/internal/config"
	"curso_feedback_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
