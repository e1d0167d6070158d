package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/api"
	"github.com/matt-g-everett/animtx/scene"
	"github.com/matt-g-everett/animtx/stream"
	"gopkg.in/yaml.v2"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *anim.Controller
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

func (a *app) loadScene() *scene.Document {
	if a.Config.Scene == "" {
		return scene.Demo()
	}

	doc, err := scene.Load(a.Config.Scene)
	if err != nil {
		panic(err)
	}
	return doc
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}

	a.Controller.Play()
	api.NewApi(a.Controller).Serve(a.Config.Api.Address)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("animtx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	publisher := stream.NewPublisher(a.Client, a.Config.Mqtt.Topics.Values)
	a.Controller = scene.Apply(a.loadScene(), publisher)

	a.run()
}
