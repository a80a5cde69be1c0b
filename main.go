//go:build linux
// +build linux

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/config"
	"github.com/fachebot/chat-tldr-bot/internal/credential"
	"github.com/fachebot/chat-tldr-bot/internal/handler"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
	"github.com/fachebot/chat-tldr-bot/internal/ratelimit"
	"github.com/fachebot/chat-tldr-bot/internal/scheduler"
	"github.com/fachebot/chat-tldr-bot/internal/svc"
	"github.com/fachebot/chat-tldr-bot/internal/teleapp"

	"github.com/zelenin/go-tdlib/client"
)

const keyIntentTTL = 30 * time.Minute

var configFile = flag.String("f", "etc/config.yaml", "the config file")

func main() {
	flag.Parse()

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c)

	// 冷却表和 Key 设置意向表由 handler 和 scheduler 共享
	cooldown := ratelimit.NewCooldown(time.Duration(c.Tldr.CooldownSeconds) * time.Second)
	intents := credential.NewIntentTable(keyIntentTTL)

	// 运行Telegram App
	options := make([]client.Option, 0)
	if c.Sock5Proxy.Enable {
		options = append(options, client.WithProxy(&client.AddProxyRequest{
			Server: c.Sock5Proxy.Host,
			Port:   c.Sock5Proxy.Port,
			Enable: c.Sock5Proxy.Enable,
			Type:   &client.ProxyTypeSocks5{},
		}))
	}

	// 创建TeleApp和命令处理器
	app := teleapp.NewApp(svcCtx, c.TelegramApp.ApiId, c.TelegramApp.ApiHash, "data")
	commandHandler := handler.NewHandler(svcCtx, app, cooldown, intents)
	app.SetHandler(commandHandler)

	user, err := app.Login(options...)
	if err != nil {
		logger.Fatalf("[TeleApp] 用户登录失败, %s", err)
	}
	logger.Infof("[TeleApp] 用户 <%s %s>(%d) 登录成功", user.FirstName, user.LastName, user.Id)

	// 创建并启动清理调度器
	schedulerInstance := scheduler.NewScheduler(
		svcCtx.MessageModel,
		cooldown,
		intents,
		&c.Tldr,
	)
	if err := schedulerInstance.Start(); err != nil {
		logger.Fatalf("[Scheduler] 启动调度器失败: %s", err)
	}

	// 等待程序退出
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	// 优雅关闭
	logger.Infof("正在关闭服务...")
	schedulerInstance.Stop()
	err = app.Close()
	if err != nil {
		logger.Infof("[TeleApp] 关闭失败, %v", err)
	}
	svcCtx.Close()
	logger.Infof("服务已停止")
}
