/*
 * @Description: 程序入口
 * @Author: 安知鱼
 * @Date: 2025-11-17 10:21:55
 * @LastEditTime: 2026-03-22 12:19:06
 * @LastEditors: 安知鱼
 */
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/behark/autoanikw-sub000/cmd/server"
)

func main() {
	app, cleanup, err := server.NewApp()
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}
	defer cleanup()

	go func() {
		if err := app.Run(); err != nil {
			log.Fatalf("应用运行失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("收到退出信号，开始优雅关停...")
	app.Shutdown(context.Background())
}
