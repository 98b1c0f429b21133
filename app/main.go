package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/umputun/yt-scraper/app/config"
	"github.com/umputun/yt-scraper/app/export"
	"github.com/umputun/yt-scraper/app/prompt"
	"github.com/umputun/yt-scraper/app/report"
	"github.com/umputun/yt-scraper/app/scraper"
	"github.com/umputun/yt-scraper/app/youtube"
)

type options struct {
	Conf   string `short:"f" long:"conf" env:"YTS_CONF" description:"config file (yml), optional"`
	Key    string `short:"k" long:"key" env:"YOUTUBE_API_KEY" description:"youtube data api key"`
	APIURL string `long:"api-url" env:"YTS_API_URL" description:"youtube data api base url, overrides config"`

	URL    string `short:"u" long:"url" description:"channel url, handle or id, prompted if not set"`
	Max    int    `short:"n" long:"max" default:"-1" description:"max videos to load, prompted if negative"`
	Export bool   `short:"e" long:"export" description:"export videos to excel file"`
	Out    string `short:"o" long:"out" env:"YTS_OUT" description:"excel file name, overrides config"`

	Source  string        `long:"source" env:"YTS_SOURCE" choice:"search" choice:"uploads" description:"video list source, overrides config"` // nolint
	Sort    string        `long:"sort" env:"YTS_SORT" choice:"date" choice:"views" choice:"likes" description:"videos order, overrides config"`  // nolint
	Timeout time.Duration `long:"timeout" env:"YTS_TIMEOUT" description:"http timeout, overrides config"`
	Batch   bool          `long:"batch" description:"never prompt, use defaults for missing parameters"`

	Dbg bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("yt-scraper %s\n", revision)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] can't load .env, %v", err)
	}

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	setupLog(opts.Dbg)

	if err := run(context.Background(), opts, os.Stdin, os.Stdout); err != nil {
		log.Printf("[ERROR] %s", errorMessage(err))
		os.Exit(1)
	}
}

// run scrapes a channel, prints summary and exports videos if asked. Missing parameters are read from in,
// unless batch mode is set.
func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	conf, err := loadConf(opts)
	if err != nil {
		return err
	}

	p := &prompt.Prompter{In: in, Out: out}
	ref, maxCount := opts.URL, opts.Max
	if ref == "" && !opts.Batch {
		ref = p.String("channel url, handle or id: ", "")
	}
	if ref == "" {
		return errors.New("channel url is not set")
	}
	if maxCount < 0 {
		maxCount = conf.Scrape.MaxVideos
		if !opts.Batch {
			maxCount = p.Int(fmt.Sprintf("max videos [%d]: ", conf.Scrape.MaxVideos), conf.Scrape.MaxVideos)
		}
	}

	client := &youtube.Client{
		HTTPClient: &http.Client{Timeout: conf.API.Timeout},
		BaseURL:    conf.API.BaseURL,
		APIKey:     conf.API.Key,
	}
	svc := scraper.Service{
		Resolver:   client,
		Channels:   client,
		Lister:     client,
		Videos:     client,
		Classifier: conf.Classifier(),
		Source:     conf.Scrape.Source,
		Sort:       conf.Scrape.Sort,
	}

	res, err := svc.Scrape(ctx, ref, maxCount)
	if err != nil {
		return err
	}

	report.Channel(out, res.Channel)
	if res.Skipped != nil {
		log.Printf("[WARN] some videos skipped, %v", res.Skipped)
	}
	if len(res.Records) == 0 {
		log.Printf("[INFO] no videos found for %s", res.Channel.Name)
		return nil
	}
	report.Videos(out, res.Records)

	fname, ok := exportTarget(opts, conf, p)
	if !ok {
		return nil
	}
	return export.Excel{}.Save(res.Records, fname)
}

// loadConf loads config file if set, applies command line overrides and validates the result
func loadConf(opts options) (*config.Conf, error) {
	conf := config.Default()
	if opts.Conf != "" {
		var err error
		if conf, err = config.Load(opts.Conf); err != nil {
			return nil, errors.Wrapf(err, "can't load config %s", opts.Conf)
		}
	}

	if opts.Key != "" {
		conf.API.Key = opts.Key
	}
	if opts.APIURL != "" {
		conf.API.BaseURL = opts.APIURL
	}
	if opts.Timeout > 0 {
		conf.API.Timeout = opts.Timeout
	}
	if opts.Source != "" {
		conf.Scrape.Source = youtube.Source(opts.Source)
	}
	if opts.Sort != "" {
		conf.Scrape.Sort = scraper.SortBy(opts.Sort)
	}
	if opts.Out != "" {
		conf.Export.File = opts.Out
	}

	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "bad configuration")
	}
	return conf, nil
}

// exportTarget decides on export and returns file name. In batch mode only --export enables it.
func exportTarget(opts options, conf *config.Conf, p *prompt.Prompter) (string, bool) {
	if opts.Batch {
		return conf.Export.File, opts.Export
	}
	if !opts.Export && !p.Bool("export to excel? [y/N]: ", false) {
		return "", false
	}
	if opts.Out != "" {
		return opts.Out, true
	}
	return p.String(fmt.Sprintf("file name [%s]: ", conf.Export.File), conf.Export.File), true
}

// errorMessage makes user facing message for known failures
func errorMessage(err error) string {
	var quotaErr *youtube.QuotaExceededError
	var resolveErr *youtube.ResolutionError
	var notFoundErr *youtube.NotFoundError
	var exportErr *export.Error

	switch {
	case errors.As(err, &quotaErr):
		return fmt.Sprintf("youtube api quota exceeded, try again after the daily reset or use another key: %v", err)
	case errors.As(err, &resolveErr):
		return fmt.Sprintf("can't find channel %q, check the url or handle: %v", resolveErr.Ref, err)
	case errors.As(err, &notFoundErr):
		return fmt.Sprintf("%s %s is not available: %v", notFoundErr.Kind, notFoundErr.ID, err)
	case errors.As(err, &exportErr):
		return fmt.Sprintf("can't save %s, check the path and permissions: %v", exportErr.File, err)
	}
	return err.Error()
}

func setupLog(dbg bool) {
	if dbg {
		log.Setup(log.Debug, log.CallerFile, log.Msec, log.LevelBraces)
		return
	}
	log.Setup(log.Msec, log.LevelBraces)
}
